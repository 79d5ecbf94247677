package service

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"

	"github.com/google/uuid"
)

// Output variability band applied on top of the solar curve (cloud cover,
// soiling and similar effects the weather model doesn't capture).
const (
	variabilityMin = 0.8
	variabilityMax = 1.2
)

// SimulatorService generates telemetry for every plant on a fixed tick.
// It stands in for the ingestion path from real inverters and feeds the
// same storage the dashboard reads.
type SimulatorService struct {
	plantRepo     repository.PlantRepo
	telemetryRepo repository.TelemetryRepo
	alerts        Alerts
	weather       Weather

	now func() time.Time // injectable for tests
}

func NewSimulatorService(plantRepo repository.PlantRepo, telemetryRepo repository.TelemetryRepo, alerts Alerts, weather Weather) *SimulatorService {
	return &SimulatorService{
		plantRepo:     plantRepo,
		telemetryRepo: telemetryRepo,
		alerts:        alerts,
		weather:       weather,
		now:           time.Now,
	}
}

var _ Simulator = (*SimulatorService)(nil)

// Run ticks at the given interval until ctx is canceled. Errors on a single
// plant never stop the loop; the next tick retries.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Step(ctx)
		}
	}
}

// Step produces one telemetry reading per plant and runs the alert checks.
func (s *SimulatorService) Step(ctx context.Context) {
	plants, err := s.plantRepo.List(ctx)
	if err != nil {
		return
	}
	now := s.now().UTC()

	for _, plant := range plants {
		rec := s.generateReading(plant, now)
		if err := s.telemetryRepo.Append(ctx, rec); err != nil {
			continue
		}
		_ = s.alerts.Evaluate(ctx, plant, rec)
	}
}

// generateReading computes one sensor reading for a plant: irradiance from
// the weather model, power from capacity and the solar curve, efficiency
// from ambient temperature.
func (s *SimulatorService) generateReading(plant models.Plant, now time.Time) models.TelemetryRecord {
	w := s.weather.Current(plant.Location, now)
	hour := float64(now.Hour()) + float64(now.Minute())/60

	power := 0.0
	if isDaylight(now.Hour()) {
		rng := rand.New(rand.NewSource(readingSeed(plant.ID, now)))
		variability := variabilityMin + rng.Float64()*(variabilityMax-variabilityMin)
		power = plant.CapacityKW * solarCurveFactor(hour) * variability * ActualOutputFactor

		// Irradiance attenuation (cloud cover) scales output the same way.
		if base := PeakIrradianceWM2 * solarCurveFactor(hour); base > 0 {
			power *= w.IrradianceWM2 / base
		}

		switch plant.Status {
		case models.PlantPartial:
			power *= PartialDeratePct
		case models.PlantOffline, models.PlantMaintenance:
			power = 0
		}
	}

	eff := efficiencyAt(w.TemperatureC)

	return models.TelemetryRecord{
		ID:                  uuid.NewString(),
		PlantID:             plant.ID,
		RecordedAt:          now,
		PowerKW:             round1(power),
		IrradianceWM2:       w.IrradianceWM2,
		AmbientTempC:        w.TemperatureC,
		EfficiencyPct:       eff,
		PerformanceRatioPct: round1(eff * PerformanceRatioFit),
	}
}

// readingSeed varies per plant and per tick so plants don't move in lockstep.
func readingSeed(plantID string, at time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(plantID))
	_, _ = h.Write([]byte(at.UTC().Format(time.RFC3339)))
	return int64(h.Sum64())
}
