package service

import (
	"context"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

// In-test stubs for the repository interfaces. Unset Fn fields return zero
// values so each test only wires what it exercises.

type plantRepoStub struct {
	ListFn                func(ctx context.Context) ([]models.Plant, error)
	GetByIDFn             func(ctx context.Context, id string) (*models.Plant, error)
	MaintenanceScheduleFn func(ctx context.Context, plantID string) ([]models.MaintenanceTask, error)
}

func (s *plantRepoStub) List(ctx context.Context) ([]models.Plant, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx)
}

func (s *plantRepoStub) GetByID(ctx context.Context, id string) (*models.Plant, error) {
	if s.GetByIDFn == nil {
		return nil, nil
	}
	return s.GetByIDFn(ctx, id)
}

func (s *plantRepoStub) Upsert(ctx context.Context, p models.Plant) error { return nil }
func (s *plantRepoStub) Count(ctx context.Context) (int, error)           { return 0, nil }

func (s *plantRepoStub) MaintenanceSchedule(ctx context.Context, plantID string) ([]models.MaintenanceTask, error) {
	if s.MaintenanceScheduleFn == nil {
		return nil, nil
	}
	return s.MaintenanceScheduleFn(ctx, plantID)
}

func (s *plantRepoStub) AddMaintenanceTask(ctx context.Context, t models.MaintenanceTask) error {
	return nil
}

type telemetryRepoStub struct {
	AppendFn        func(ctx context.Context, rec models.TelemetryRecord) error
	LatestFn        func(ctx context.Context, plantID string) (*models.TelemetryRecord, error)
	HourlyStatsFn   func(ctx context.Context, plantID string, from, to time.Time) ([]repository.HourlyStat, error)
	DailyStatsFn    func(ctx context.Context, plantID string, from, to time.Time) ([]repository.DailyStat, error)
	PowerExtremesFn func(ctx context.Context, plantID string, from, to time.Time) (float64, float64, error)

	appended []models.TelemetryRecord
}

func (s *telemetryRepoStub) Append(ctx context.Context, rec models.TelemetryRecord) error {
	s.appended = append(s.appended, rec)
	if s.AppendFn == nil {
		return nil
	}
	return s.AppendFn(ctx, rec)
}

func (s *telemetryRepoStub) Latest(ctx context.Context, plantID string) (*models.TelemetryRecord, error) {
	if s.LatestFn == nil {
		return nil, nil
	}
	return s.LatestFn(ctx, plantID)
}

func (s *telemetryRepoStub) HourlyStats(ctx context.Context, plantID string, from, to time.Time) ([]repository.HourlyStat, error) {
	if s.HourlyStatsFn == nil {
		return nil, nil
	}
	return s.HourlyStatsFn(ctx, plantID, from, to)
}

func (s *telemetryRepoStub) DailyStats(ctx context.Context, plantID string, from, to time.Time) ([]repository.DailyStat, error) {
	if s.DailyStatsFn == nil {
		return nil, nil
	}
	return s.DailyStatsFn(ctx, plantID, from, to)
}

func (s *telemetryRepoStub) PowerExtremes(ctx context.Context, plantID string, from, to time.Time) (float64, float64, error) {
	if s.PowerExtremesFn == nil {
		return 0, 0, nil
	}
	return s.PowerExtremesFn(ctx, plantID, from, to)
}

type alertRepoStub struct {
	CreateFn       func(ctx context.Context, a models.Alert) error
	ListActiveFn   func(ctx context.Context, plantID, level string) ([]models.Alert, error)
	ListHistoryFn  func(ctx context.Context, plantID, level string, since time.Time) ([]models.Alert, error)
	AcknowledgeFn  func(ctx context.Context, id string, at time.Time, resolution string) (bool, error)
	ActiveExistsFn func(ctx context.Context, plantID, title string) (bool, error)

	created []models.Alert
}

func (s *alertRepoStub) Create(ctx context.Context, a models.Alert) error {
	s.created = append(s.created, a)
	if s.CreateFn == nil {
		return nil
	}
	return s.CreateFn(ctx, a)
}

func (s *alertRepoStub) ListActive(ctx context.Context, plantID, level string) ([]models.Alert, error) {
	if s.ListActiveFn == nil {
		return nil, nil
	}
	return s.ListActiveFn(ctx, plantID, level)
}

func (s *alertRepoStub) ListHistory(ctx context.Context, plantID, level string, since time.Time) ([]models.Alert, error) {
	if s.ListHistoryFn == nil {
		return nil, nil
	}
	return s.ListHistoryFn(ctx, plantID, level, since)
}

func (s *alertRepoStub) Acknowledge(ctx context.Context, id string, at time.Time, resolution string) (bool, error) {
	if s.AcknowledgeFn == nil {
		return false, nil
	}
	return s.AcknowledgeFn(ctx, id, at, resolution)
}

func (s *alertRepoStub) ActiveExists(ctx context.Context, plantID, title string) (bool, error) {
	if s.ActiveExistsFn == nil {
		return false, nil
	}
	return s.ActiveExistsFn(ctx, plantID, title)
}

type panelRepoStub struct {
	ListFn        func(ctx context.Context, plantID string) ([]models.Panel, error)
	GetByIDFn     func(ctx context.Context, id string) (*models.Panel, error)
	MaintenanceFn func(ctx context.Context, panelID string) ([]models.PanelMaintenance, error)
	ProblemsFn    func(ctx context.Context, panelID string) ([]models.PanelProblem, error)

	addedMaintenance []models.PanelMaintenance
	addedProblems    []models.PanelProblem
}

func (s *panelRepoStub) List(ctx context.Context, plantID string) ([]models.Panel, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx, plantID)
}

func (s *panelRepoStub) GetByID(ctx context.Context, id string) (*models.Panel, error) {
	if s.GetByIDFn == nil {
		return nil, nil
	}
	return s.GetByIDFn(ctx, id)
}

func (s *panelRepoStub) Upsert(ctx context.Context, p models.Panel) error { return nil }

func (s *panelRepoStub) Maintenance(ctx context.Context, panelID string) ([]models.PanelMaintenance, error) {
	if s.MaintenanceFn == nil {
		return nil, nil
	}
	return s.MaintenanceFn(ctx, panelID)
}

func (s *panelRepoStub) Problems(ctx context.Context, panelID string) ([]models.PanelProblem, error) {
	if s.ProblemsFn == nil {
		return nil, nil
	}
	return s.ProblemsFn(ctx, panelID)
}

func (s *panelRepoStub) AddMaintenance(ctx context.Context, m models.PanelMaintenance) error {
	s.addedMaintenance = append(s.addedMaintenance, m)
	return nil
}

func (s *panelRepoStub) AddProblem(ctx context.Context, p models.PanelProblem) error {
	s.addedProblems = append(s.addedProblems, p)
	return nil
}

type chatRepoStub struct {
	HistoryFn func(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error)

	appended []models.ChatMessage
	cleared  []string
}

func (s *chatRepoStub) Append(ctx context.Context, m models.ChatMessage) error {
	s.appended = append(s.appended, m)
	return nil
}

func (s *chatRepoStub) History(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	if s.HistoryFn == nil {
		return nil, nil
	}
	return s.HistoryFn(ctx, sessionID, limit)
}

func (s *chatRepoStub) Clear(ctx context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)
	return nil
}

// weatherStub returns a fixed forecast regardless of location and time.
type weatherStub struct {
	w models.Weather
}

func (s *weatherStub) Current(location string, at time.Time) models.Weather { return s.w }
