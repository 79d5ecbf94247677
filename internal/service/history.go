package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

const defaultHistoryMaxDays = 366

// ErrInvalidRange marks range validation failures so handlers can map
// them to bad requests.
var ErrInvalidRange = errors.New("invalid time range")

// HistoryService serves per-day performance series from telemetry rollups.
type HistoryService struct {
	plantRepo     repository.PlantRepo
	telemetryRepo repository.TelemetryRepo
	maxDays       int
}

func NewHistoryService(plantRepo repository.PlantRepo, telemetryRepo repository.TelemetryRepo, maxDays int) *HistoryService {
	if maxDays <= 0 {
		maxDays = defaultHistoryMaxDays
	}
	return &HistoryService{plantRepo: plantRepo, telemetryRepo: telemetryRepo, maxDays: maxDays}
}

var _ History = (*HistoryService)(nil)

// Range returns one entry per day with telemetry in [from, to].
// Production is reconstructed from the day's average power; the target
// comes from the plant record and is constant across the range.
func (s *HistoryService) Range(ctx context.Context, plantID string, from, to time.Time) ([]models.DailyEnergy, error) {
	from = from.UTC()
	to = to.UTC()
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must be <= to", ErrInvalidRange)
	}
	if to.Sub(from) > time.Duration(s.maxDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: span exceeds %d days", ErrInvalidRange, s.maxDays)
	}

	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}

	stats, err := s.telemetryRepo.DailyStats(ctx, plantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load daily stats: %w", err)
	}

	out := make([]models.DailyEnergy, 0, len(stats))
	for _, st := range stats {
		out = append(out, models.DailyEnergy{
			Date: st.Date,
			// Night readings are zero and included in the average, so
			// avg kW over the full day times 24h reconstructs kWh.
			ProductionKWh: round1(st.AvgPowerKW * 24),
			TargetKWh:     plant.DailyTargetKWh,
			EfficiencyPct: round1(st.AvgEfficiencyPct),
		})
	}
	return out, nil
}
