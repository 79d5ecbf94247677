package handlers

import (
	"context"
	"net/http"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPlants struct {
	plants     []models.Plant
	details    *service.PlantDetails
	listErr    error
	detailsErr error

	lastDetailsID string
}

func (m *mockPlants) List(ctx context.Context) ([]models.Plant, error) {
	return m.plants, m.listErr
}
func (m *mockPlants) Details(ctx context.Context, plantID string) (*service.PlantDetails, error) {
	m.lastDetailsID = plantID
	return m.details, m.detailsErr
}

type mockMonitoring struct {
	snap models.PlantSnapshot
	err  error

	snapshotCalls int
	lastPlantID   string
}

func (m *mockMonitoring) Snapshot(ctx context.Context, plantID string) (models.PlantSnapshot, error) {
	m.snapshotCalls++
	m.lastPlantID = plantID
	return m.snap, m.err
}

type mockHistory struct {
	days []models.DailyEnergy
	err  error

	lastFrom time.Time
	lastTo   time.Time
}

func (m *mockHistory) Range(ctx context.Context, plantID string, from, to time.Time) ([]models.DailyEnergy, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.days, m.err
}

type mockAlerts struct {
	active     []models.Alert
	history    []models.Alert
	created    models.Alert
	activeErr  error
	historyErr error
	ackErr     error
	createErr  error

	lastFilter   service.AlertFilter
	lastDays     int
	ackCalls     int
	lastAckID    string
	createCalls  int
	lastCreateID string
}

func (m *mockAlerts) Active(ctx context.Context, f service.AlertFilter) ([]models.Alert, error) {
	m.lastFilter = f
	return m.active, m.activeErr
}
func (m *mockAlerts) History(ctx context.Context, f service.AlertFilter, days int) ([]models.Alert, error) {
	m.lastFilter = f
	m.lastDays = days
	return m.history, m.historyErr
}
func (m *mockAlerts) Acknowledge(ctx context.Context, id string) error {
	m.ackCalls++
	m.lastAckID = id
	return m.ackErr
}
func (m *mockAlerts) Create(ctx context.Context, plantID, level, title, message string) (models.Alert, error) {
	m.createCalls++
	m.lastCreateID = plantID
	return m.created, m.createErr
}
func (m *mockAlerts) Evaluate(ctx context.Context, plant models.Plant, rec models.TelemetryRecord) error {
	return nil
}

type mockCharts struct {
	cfg *service.ChartConfig
	err error
}

func (m *mockCharts) HourlyProduction(ctx context.Context, plantID string) (*service.ChartConfig, error) {
	return m.cfg, m.err
}
func (m *mockCharts) DailyComparison(ctx context.Context, plantID string, from, to time.Time) (*service.ChartConfig, error) {
	return m.cfg, m.err
}
func (m *mockCharts) EfficiencyTrend(ctx context.Context, plantID string, from, to time.Time) (*service.ChartConfig, error) {
	return m.cfg, m.err
}

type mockPanels struct {
	panels  []models.Panel
	detail  *models.PanelDetail
	listErr error
	detErr  error
	addErr  error

	lastMaintenance models.PanelMaintenance
	lastProblem     models.PanelProblem
}

func (m *mockPanels) List(ctx context.Context, plantID string) ([]models.Panel, error) {
	return m.panels, m.listErr
}
func (m *mockPanels) Detail(ctx context.Context, panelID string) (*models.PanelDetail, error) {
	return m.detail, m.detErr
}
func (m *mockPanels) AddMaintenance(ctx context.Context, rec models.PanelMaintenance) error {
	m.lastMaintenance = rec
	return m.addErr
}
func (m *mockPanels) AddProblem(ctx context.Context, p models.PanelProblem) error {
	m.lastProblem = p
	return m.addErr
}

type mockAssistant struct {
	reply    models.ChatMessage
	analysis string
	chatErr  error
	anaErr   error
	resetErr error

	lastSession string
	lastMessage string
	lastPanelID string
	resetCalls  int
}

func (m *mockAssistant) Chat(ctx context.Context, sessionID, message, panelID string) (models.ChatMessage, error) {
	m.lastSession = sessionID
	m.lastMessage = message
	m.lastPanelID = panelID
	return m.reply, m.chatErr
}
func (m *mockAssistant) AnalyzePanel(ctx context.Context, panelID string) (string, error) {
	m.lastPanelID = panelID
	return m.analysis, m.anaErr
}
func (m *mockAssistant) Reset(ctx context.Context, sessionID string) error {
	m.resetCalls++
	m.lastSession = sessionID
	return m.resetErr
}

type mockWeather struct {
	w models.Weather

	lastLocation string
}

func (m *mockWeather) Current(location string, at time.Time) models.Weather {
	m.lastLocation = location
	return m.w
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
