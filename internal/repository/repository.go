package repository

import (
	"context"
	"database/sql"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository/db"
)

// InitDB opens the SQLite file and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// PlantRepo provides access to plant records and their maintenance schedule.
type PlantRepo interface {
	List(ctx context.Context) ([]models.Plant, error)
	GetByID(ctx context.Context, id string) (*models.Plant, error)
	Upsert(ctx context.Context, p models.Plant) error
	Count(ctx context.Context) (int, error)
	MaintenanceSchedule(ctx context.Context, plantID string) ([]models.MaintenanceTask, error)
	AddMaintenanceTask(ctx context.Context, t models.MaintenanceTask) error
}

// HourlyStat is an hour-of-day average power bucket.
type HourlyStat struct {
	Hour       int
	AvgPowerKW float64
}

// DailyStat is a per-day average over telemetry rows.
type DailyStat struct {
	Date                   string // YYYY-MM-DD
	AvgPowerKW             float64
	AvgEfficiencyPct       float64
	AvgPerformanceRatioPct float64
}

// TelemetryRepo is the append-only sensor reading store with rollup queries.
type TelemetryRepo interface {
	Append(ctx context.Context, rec models.TelemetryRecord) error
	Latest(ctx context.Context, plantID string) (*models.TelemetryRecord, error)
	HourlyStats(ctx context.Context, plantID string, from, to time.Time) ([]HourlyStat, error)
	DailyStats(ctx context.Context, plantID string, from, to time.Time) ([]DailyStat, error)
	PowerExtremes(ctx context.Context, plantID string, from, to time.Time) (peakKW, avgKW float64, err error)
}

// AlertRepo stores alerts; active until acknowledged, then history.
type AlertRepo interface {
	Create(ctx context.Context, a models.Alert) error
	ListActive(ctx context.Context, plantID, level string) ([]models.Alert, error)
	ListHistory(ctx context.Context, plantID, level string, since time.Time) ([]models.Alert, error)
	Acknowledge(ctx context.Context, id string, at time.Time, resolution string) (bool, error)
	ActiveExists(ctx context.Context, plantID, title string) (bool, error)
}

// PanelRepo provides the panel inventory with maintenance/problem history.
type PanelRepo interface {
	List(ctx context.Context, plantID string) ([]models.Panel, error)
	GetByID(ctx context.Context, id string) (*models.Panel, error)
	Upsert(ctx context.Context, p models.Panel) error
	Maintenance(ctx context.Context, panelID string) ([]models.PanelMaintenance, error)
	Problems(ctx context.Context, panelID string) ([]models.PanelProblem, error)
	AddMaintenance(ctx context.Context, m models.PanelMaintenance) error
	AddProblem(ctx context.Context, p models.PanelProblem) error
}

// ChatRepo persists assistant conversation history per session.
type ChatRepo interface {
	Append(ctx context.Context, m models.ChatMessage) error
	History(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

type Repository struct {
	Plants    PlantRepo
	Telemetry TelemetryRepo
	Alerts    AlertRepo
	Panels    PanelRepo
	Chat      ChatRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Plants:    NewPlantSQLite(db),
		Telemetry: NewTelemetrySQLite(db),
		Alerts:    NewAlertSQLite(db),
		Panels:    NewPanelSQLite(db),
		Chat:      NewChatSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
