package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
	historyWindow      = 20
	maxRetries         = 2
	retryDelay         = 2 * time.Second
)

// Domain errors for assistant flows.
var (
	// ErrAssistantUnavailable means no API key was configured at startup.
	ErrAssistantUnavailable = errors.New("assistant is not configured: set GEMINI_API_KEY")
	errEmptyMessage         = fmt.Errorf("%w: message must not be empty", ErrValidation)
)

// generator abstracts the model call so tests can stub it out.
type generator interface {
	generate(ctx context.Context, contents []*genai.Content, systemInstruction string) (string, error)
}

// AssistantService answers operator questions about solar performance and
// produces panel health analyses using the Gemini API. Conversations are
// persisted per session so context survives restarts.
type AssistantService struct {
	gen      generator
	model    string
	chatRepo repository.ChatRepo
	panels   Panels
}

func NewAssistantService(apiKey, model string, chatRepo repository.ChatRepo, panels Panels) *AssistantService {
	if model == "" {
		model = defaultGeminiModel
	}
	s := &AssistantService{model: model, chatRepo: chatRepo, panels: panels}
	if apiKey != "" {
		s.gen = &geminiGenerator{apiKey: apiKey, model: model}
	}
	return s
}

var _ Assistant = (*AssistantService)(nil)

// Chat sends a user message, optionally grounded in one panel's data, and
// returns the model's reply. Both sides of the exchange are persisted.
func (s *AssistantService) Chat(ctx context.Context, sessionID, message, panelID string) (models.ChatMessage, error) {
	if s.gen == nil {
		return models.ChatMessage{}, ErrAssistantUnavailable
	}
	if message == "" {
		return models.ChatMessage{}, errEmptyMessage
	}

	history, err := s.chatRepo.History(ctx, sessionID, historyWindow)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("load chat history: %w", err)
	}

	var contents []*genai.Content
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	prompt := message
	if panelID != "" {
		detail, derr := s.panels.Detail(ctx, panelID)
		if derr != nil {
			return models.ChatMessage{}, derr
		}
		prompt = formatPanelContext(detail) + "\n\n" + message
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	now := time.Now().UTC()
	if err := s.chatRepo.Append(ctx, models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   message,
		CreatedAt: now,
	}); err != nil {
		return models.ChatMessage{}, fmt.Errorf("persist user message: %w", err)
	}

	answer, err := s.gen.generate(ctx, contents, assistantSystemPrompt)
	if err != nil {
		return models.ChatMessage{}, err
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      models.RoleModel,
		Content:   answer,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chatRepo.Append(ctx, reply); err != nil {
		return models.ChatMessage{}, fmt.Errorf("persist assistant reply: %w", err)
	}
	return reply, nil
}

// AnalyzePanel asks the model for a structured health assessment of one panel.
// The analysis is stateless and not written to any chat session.
func (s *AssistantService) AnalyzePanel(ctx context.Context, panelID string) (string, error) {
	if s.gen == nil {
		return "", ErrAssistantUnavailable
	}

	detail, err := s.panels.Detail(ctx, panelID)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(formatPanelContext(detail)+"\n\n"+panelAnalysisRequest, genai.RoleUser),
	}
	return s.gen.generate(ctx, contents, assistantSystemPrompt)
}

// Reset discards a session's conversation history.
func (s *AssistantService) Reset(ctx context.Context, sessionID string) error {
	return s.chatRepo.Clear(ctx, sessionID)
}

// geminiGenerator is the production generator. The underlying client is
// created on first use so startup never depends on it; handlers run
// concurrently, so the init is guarded by a sync.Once.
type geminiGenerator struct {
	apiKey string
	model  string

	initOnce sync.Once
	initErr  error
	client   *genai.Client
}

func (g *geminiGenerator) init(ctx context.Context) error {
	g.initOnce.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			g.initErr = fmt.Errorf("create genai client: %w", err)
			return
		}
		g.client = client
	})
	return g.initErr
}

// retryWait blocks for d or until ctx is canceled.
func retryWait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (g *geminiGenerator) generate(ctx context.Context, contents []*genai.Content, systemInstruction string) (string, error) {
	if err := g.init(ctx); err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	var resp *genai.GenerateContentResponse
	var err error
	for i := 0; i <= maxRetries; i++ {
		resp, err = g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
		if err == nil {
			break
		}
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == 500 || apiErr.Code == 503) && i < maxRetries {
			if werr := retryWait(ctx, retryDelay); werr != nil {
				return "", werr
			}
			continue
		}
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if err != nil {
		return "", fmt.Errorf("gemini API call failed after %d retries: %w", maxRetries, err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("request blocked by safety filter: %v", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("model returned empty content")
	}
	return resp.Text(), nil
}
