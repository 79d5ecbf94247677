package service

import (
	"context"
	"fmt"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

// MonitoringService assembles the live snapshot a dashboard renders for
// one plant: KPIs, hourly production, inverter/component statuses, weather.
type MonitoringService struct {
	plantRepo     repository.PlantRepo
	telemetryRepo repository.TelemetryRepo
	weather       Weather

	now func() time.Time // injectable for tests
}

func NewMonitoringService(plantRepo repository.PlantRepo, telemetryRepo repository.TelemetryRepo, weather Weather) *MonitoringService {
	return &MonitoringService{
		plantRepo:     plantRepo,
		telemetryRepo: telemetryRepo,
		weather:       weather,
		now:           time.Now,
	}
}

var _ Monitoring = (*MonitoringService)(nil)

// One inverter per 100 kW of capacity, at least one.
const capacityPerInverterKW = 100.0

// Snapshot builds the live view of a plant from its latest telemetry and
// today's rollups.
func (s *MonitoringService) Snapshot(ctx context.Context, plantID string) (models.PlantSnapshot, error) {
	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		return models.PlantSnapshot{}, err
	}
	if plant == nil {
		return models.PlantSnapshot{}, ErrPlantNotFound
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	snap := models.PlantSnapshot{
		PlantID:     plant.ID,
		GeneratedAt: now,
		Weather:     s.weather.Current(plant.Location, now),
	}

	// Current reading
	latest, err := s.telemetryRepo.Latest(ctx, plantID)
	if err != nil {
		return models.PlantSnapshot{}, fmt.Errorf("load latest telemetry: %w", err)
	}
	if latest != nil {
		snap.CurrentProductionKW = round1(latest.PowerKW)
		snap.EfficiencyPct = latest.EfficiencyPct
		snap.PerformanceRatioPct = latest.PerformanceRatioPct
	}
	if plant.CapacityKW > 0 {
		snap.CapacityPct = round1(snap.CurrentProductionKW / plant.CapacityKW * 100)
	}

	// Today's hourly series: actual buckets so far, projection for the rest.
	hourly, err := s.telemetryRepo.HourlyStats(ctx, plantID, dayStart, now)
	if err != nil {
		return models.PlantSnapshot{}, fmt.Errorf("load hourly stats: %w", err)
	}
	snap.HourlyProduction, snap.DailyProductionKWh = buildHourlySeries(hourly, now.Hour(), plant.CapacityKW)
	if plant.DailyTargetKWh > 0 {
		snap.DailyTargetPct = round1(snap.DailyProductionKWh / plant.DailyTargetKWh * 100)
	}

	// Peak/average over today's non-zero readings.
	peak, avg, err := s.telemetryRepo.PowerExtremes(ctx, plantID, dayStart, now)
	if err != nil {
		return models.PlantSnapshot{}, fmt.Errorf("load power extremes: %w", err)
	}
	snap.PeakPowerKW = round1(peak)
	snap.AveragePowerKW = round1(avg)

	// Yesterday's averages for the KPI deltas.
	yStart := dayStart.AddDate(0, 0, -1)
	yStats, err := s.telemetryRepo.DailyStats(ctx, plantID, yStart, dayStart.Add(-time.Second))
	if err != nil {
		return models.PlantSnapshot{}, fmt.Errorf("load yesterday stats: %w", err)
	}
	if len(yStats) > 0 {
		snap.EfficiencyYesterdayPct = round1(yStats[0].AvgEfficiencyPct)
		snap.PerformanceRatioYestPct = round1(yStats[0].AvgPerformanceRatioPct)
	}

	snap.InverterStatus = inverterStatuses(*plant)
	snap.Components = componentStatuses(*plant, snap.InverterStatus, now)

	return snap, nil
}

// buildHourlySeries merges actual hour buckets with projected values for
// hours that have not happened yet. Returns the series and the realized
// daily production (sum of actual buckets).
func buildHourlySeries(actual []repository.HourlyStat, currentHour int, capacityKW float64) ([]models.HourlyEnergy, float64) {
	byHour := make(map[int]float64, len(actual))
	for _, st := range actual {
		byHour[st.Hour] = st.AvgPowerKW
	}

	series := make([]models.HourlyEnergy, 0, 24)
	daily := 0.0
	for h := 0; h < 24; h++ {
		e := models.HourlyEnergy{Hour: fmt.Sprintf("%02d:00", h)}
		if h <= currentHour {
			// Average kW over one hour equals kWh for that hour.
			e.EnergyKWh = round1(byHour[h])
			daily += e.EnergyKWh
		} else {
			e.Projected = true
			e.EnergyKWh = round1(solarCurveFactor(float64(h)+0.5) * capacityKW * ProjectedFactor)
		}
		series = append(series, e)
	}
	return series, round1(daily)
}

// inverterStatuses derives per-inverter health from plant status: a plant in
// Partially Operational state reports its last inverter down.
func inverterStatuses(plant models.Plant) []string {
	count := int(plant.CapacityKW / capacityPerInverterKW)
	if count < 1 {
		count = 1
	}
	statuses := make([]string, count)
	for i := range statuses {
		statuses[i] = models.InverterOnline
	}
	switch plant.Status {
	case models.PlantPartial:
		statuses[count-1] = models.InverterOffline
	case models.PlantOffline, models.PlantMaintenance:
		for i := range statuses {
			statuses[i] = models.InverterOffline
		}
	}
	return statuses
}

// componentStatuses builds the component table; the inverter row reflects
// the derived inverter statuses.
func componentStatuses(plant models.Plant, inverters []string, now time.Time) []models.ComponentStatus {
	inverterStatus := models.ComponentNormal
	for _, st := range inverters {
		if st != models.InverterOnline {
			inverterStatus = models.ComponentWarning
			break
		}
	}
	commsStatus := models.ComponentNormal
	if plant.Status == models.PlantOffline {
		commsStatus = models.ComponentCritical
	}

	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	return []models.ComponentStatus{
		{Component: "PV Panels", Status: models.ComponentNormal, LastCheck: day(3)},
		{Component: "Inverters", Status: inverterStatus, LastCheck: day(2)},
		{Component: "Mounting System", Status: models.ComponentNormal, LastCheck: day(10)},
		{Component: "AC Subsystem", Status: models.ComponentNormal, LastCheck: day(5)},
		{Component: "Communications", Status: commsStatus, LastCheck: day(0)},
	}
}
