package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"

	"github.com/google/uuid"
)

// Threshold constants for the evaluation pass.
const (
	lowOutputRatio     = 0.7 // warn when power drops below this share of expected
	defaultHistoryDays = 30
	ackResolution      = "Acknowledged"

	titleNoProduction = "No Production During Daylight"
	titleLowOutput    = "Output Below Expected"
)

// Domain errors for alert flows.
var (
	ErrAlertNotFound = errors.New("alert not found or already acknowledged")
	errInvalidLevel  = fmt.Errorf("%w: level must be Critical, Warning, or Information", ErrValidation)
)

type AlertService struct {
	alertRepo repository.AlertRepo

	now func() time.Time // injectable for tests
}

func NewAlertService(alertRepo repository.AlertRepo) *AlertService {
	return &AlertService{alertRepo: alertRepo, now: time.Now}
}

var _ Alerts = (*AlertService)(nil)

// Active lists unacknowledged alerts, newest first.
func (s *AlertService) Active(ctx context.Context, f AlertFilter) ([]models.Alert, error) {
	if f.Level != "" && !models.ValidAlertLevel(f.Level) {
		return nil, errInvalidLevel
	}
	return s.alertRepo.ListActive(ctx, f.PlantID, f.Level)
}

// History lists acknowledged alerts from the last `days` days (default 30).
func (s *AlertService) History(ctx context.Context, f AlertFilter, days int) ([]models.Alert, error) {
	if f.Level != "" && !models.ValidAlertLevel(f.Level) {
		return nil, errInvalidLevel
	}
	if days <= 0 {
		days = defaultHistoryDays
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	return s.alertRepo.ListHistory(ctx, f.PlantID, f.Level, since)
}

// Acknowledge resolves an active alert. Acknowledging an unknown or already
// acknowledged alert returns ErrAlertNotFound.
func (s *AlertService) Acknowledge(ctx context.Context, id string) error {
	ok, err := s.alertRepo.Acknowledge(ctx, id, s.now().UTC(), ackResolution)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlertNotFound
	}
	return nil
}

// Create raises a new active alert.
func (s *AlertService) Create(ctx context.Context, plantID, level, title, message string) (models.Alert, error) {
	if !models.ValidAlertLevel(level) {
		return models.Alert{}, errInvalidLevel
	}
	a := models.Alert{
		ID:        uuid.NewString(),
		PlantID:   plantID,
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.alertRepo.Create(ctx, a); err != nil {
		return models.Alert{}, err
	}
	return a, nil
}

// Evaluate runs the threshold checks against one telemetry reading and
// raises alerts as needed. Duplicate open alerts (same plant and title)
// are suppressed.
func (s *AlertService) Evaluate(ctx context.Context, plant models.Plant, rec models.TelemetryRecord) error {
	if !isDaylight(rec.RecordedAt.UTC().Hour()) {
		return nil
	}

	// Offline and maintenance plants are expected to produce nothing.
	if plant.Status == models.PlantOffline || plant.Status == models.PlantMaintenance {
		return nil
	}

	// Operational plant producing nothing in daylight is a hard failure.
	if plant.Status == models.PlantOperational && rec.PowerKW == 0 {
		return s.raise(ctx, plant.ID, models.AlertCritical, titleNoProduction,
			fmt.Sprintf("Plant %s reports zero output during daylight hours. Check grid connection and inverters.", plant.Name))
	}

	// Output far below what the measured irradiance supports. Partially
	// operational plants are held to their derated expectation.
	expected := plant.CapacityKW * rec.IrradianceWM2 / PeakIrradianceWM2 * ActualOutputFactor
	if plant.Status == models.PlantPartial {
		expected *= PartialDeratePct
	}
	if expected > 0 && rec.PowerKW < expected*lowOutputRatio {
		return s.raise(ctx, plant.ID, models.AlertWarning, titleLowOutput,
			fmt.Sprintf("Plant %s produced %.1f kW against an expected %.1f kW for current irradiance. Possible shading, soiling, or inverter issue.",
				plant.Name, rec.PowerKW, expected))
	}

	return nil
}

func (s *AlertService) raise(ctx context.Context, plantID, level, title, message string) error {
	exists, err := s.alertRepo.ActiveExists(ctx, plantID, title)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.alertRepo.Create(ctx, models.Alert{
		ID:        uuid.NewString(),
		PlantID:   plantID,
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: s.now().UTC(),
	})
}
