package service

import (
	"context"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Plants exposes the plant registry.
type Plants interface {
	List(ctx context.Context) ([]models.Plant, error)
	Details(ctx context.Context, plantID string) (*PlantDetails, error)
}

// Monitoring exposes the live dashboard snapshot of a plant.
type Monitoring interface {
	Snapshot(ctx context.Context, plantID string) (models.PlantSnapshot, error)
}

// History exposes per-day performance series over a date range.
type History interface {
	Range(ctx context.Context, plantID string, from, to time.Time) ([]models.DailyEnergy, error)
}

// Alerts manages the alert lifecycle and the threshold checks.
type Alerts interface {
	Active(ctx context.Context, f AlertFilter) ([]models.Alert, error)
	History(ctx context.Context, f AlertFilter, days int) ([]models.Alert, error)
	Acknowledge(ctx context.Context, id string) error
	Create(ctx context.Context, plantID, level, title, message string) (models.Alert, error)
	Evaluate(ctx context.Context, plant models.Plant, rec models.TelemetryRecord) error
}

// Charts builds render-ready chart configs for the dashboard frontend.
type Charts interface {
	HourlyProduction(ctx context.Context, plantID string) (*ChartConfig, error)
	DailyComparison(ctx context.Context, plantID string, from, to time.Time) (*ChartConfig, error)
	EfficiencyTrend(ctx context.Context, plantID string, from, to time.Time) (*ChartConfig, error)
}

// Panels exposes the panel inventory with maintenance/problem history.
type Panels interface {
	List(ctx context.Context, plantID string) ([]models.Panel, error)
	Detail(ctx context.Context, panelID string) (*models.PanelDetail, error)
	AddMaintenance(ctx context.Context, m models.PanelMaintenance) error
	AddProblem(ctx context.Context, p models.PanelProblem) error
}

// Assistant is the LLM-backed Q&A and panel-health analysis layer.
type Assistant interface {
	Chat(ctx context.Context, sessionID, message, panelID string) (models.ChatMessage, error)
	AnalyzePanel(ctx context.Context, panelID string) (string, error)
	Reset(ctx context.Context, sessionID string) error
}

// Weather provides (simulated) ambient conditions for a plant location.
type Weather interface {
	Current(location string, at time.Time) models.Weather
}

// Simulator runs the background loop that generates telemetry and runs
// alert checks. Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Plants
	Monitoring
	History
	Alerts
	Charts
	Panels
	Assistant
	Weather
	Simulator
	Authorization
}

// Config carries the knobs services need beyond repositories.
type Config struct {
	JWTSigningKey  string
	GeminiAPIKey   string
	GeminiModel    string
	HistoryMaxDays int
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	weather := NewWeatherService()
	panels := NewPanelService(repos.Panels)
	monitoring := NewMonitoringService(repos.Plants, repos.Telemetry, weather)
	history := NewHistoryService(repos.Plants, repos.Telemetry, cfg.HistoryMaxDays)
	alerts := NewAlertService(repos.Alerts)

	return &Service{
		Plants:        NewPlantService(repos.Plants),
		Monitoring:    monitoring,
		History:       history,
		Alerts:        alerts,
		Charts:        NewChartService(monitoring, history),
		Panels:        panels,
		Assistant:     NewAssistantService(cfg.GeminiAPIKey, cfg.GeminiModel, repos.Chat, panels),
		Weather:       weather,
		Simulator:     NewSimulatorService(repos.Plants, repos.Telemetry, alerts, weather),
		Authorization: NewAuthService(repos.Auth, cfg.JWTSigningKey),
	}
}
