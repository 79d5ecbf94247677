package models

import "time"

// TelemetryRecord is a single sensor reading for a plant. Append-only.
type TelemetryRecord struct {
	ID                  string    `json:"id"`
	PlantID             string    `json:"plant_id"`
	RecordedAt          time.Time `json:"recorded_at"`
	PowerKW             float64   `json:"power_kw"`
	IrradianceWM2       float64   `json:"irradiance_wm2"`
	AmbientTempC        float64   `json:"ambient_temp_c"`
	EfficiencyPct       float64   `json:"efficiency_pct"`
	PerformanceRatioPct float64   `json:"performance_ratio_pct"`
}

// HourlyEnergy is an hourly production bucket for the current day.
// Projected marks hours that have not happened yet.
type HourlyEnergy struct {
	Hour      string  `json:"hour"` // "HH:00"
	EnergyKWh float64 `json:"energy_kwh"`
	Projected bool    `json:"projected"`
}

// DailyEnergy is a per-day rollup used by the history view.
type DailyEnergy struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	ProductionKWh float64 `json:"production_kwh"`
	TargetKWh     float64 `json:"target_kwh"`
	EfficiencyPct float64 `json:"efficiency_pct"`
}

// InverterStatus values.
const (
	InverterOnline  = "Online"
	InverterOffline = "Offline"
)

// Component status values.
const (
	ComponentNormal   = "Normal"
	ComponentWarning  = "Warning"
	ComponentCritical = "Critical"
)

// ComponentStatus is one row of the plant components table.
type ComponentStatus struct {
	Component string `json:"component"`
	Status    string `json:"status"` // Normal | Warning | Critical
	LastCheck string `json:"last_check"`
}

// PlantSnapshot is the live dashboard view of a plant.
type PlantSnapshot struct {
	PlantID                  string            `json:"plant_id"`
	GeneratedAt              time.Time         `json:"generated_at"`
	CurrentProductionKW      float64           `json:"current_production_kw"`
	CapacityPct              float64           `json:"capacity_pct"`
	DailyProductionKWh       float64           `json:"daily_production_kwh"`
	DailyTargetPct           float64           `json:"daily_target_pct"`
	EfficiencyPct            float64           `json:"efficiency_pct"`
	EfficiencyYesterdayPct   float64           `json:"efficiency_yesterday_pct"`
	PerformanceRatioPct      float64           `json:"performance_ratio_pct"`
	PerformanceRatioYestPct  float64           `json:"performance_ratio_yesterday_pct"`
	PeakPowerKW              float64           `json:"peak_power_kw"`
	AveragePowerKW           float64           `json:"average_power_kw"`
	InverterStatus           []string          `json:"inverter_status"`
	Components               []ComponentStatus `json:"components"`
	HourlyProduction         []HourlyEnergy    `json:"hourly_production"`
	Weather                  Weather           `json:"weather"`
}
