package models

import "time"

// Plant status values.
const (
	PlantOperational = "Operational"
	PlantPartial     = "Partially Operational"
	PlantMaintenance = "Under Maintenance"
	PlantOffline     = "Offline"
)

// Maintenance task status values.
const (
	TaskScheduled  = "Scheduled"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
	TaskCancelled  = "Cancelled"
)

// Plant is a monitored solar installation.
type Plant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	CapacityKW       float64   `json:"capacity_kw"`
	PanelsCount      int       `json:"panels_count"`
	InstallationDate string    `json:"installation_date"` // YYYY-MM-DD
	Status           string    `json:"status"`            // Operational | Partially Operational | Under Maintenance | Offline
	DailyTargetKWh   float64   `json:"daily_target_kwh"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MaintenanceTask is a plant-level scheduled maintenance activity.
type MaintenanceTask struct {
	ID          string `json:"id"`
	PlantID     string `json:"plant_id"`
	Task        string `json:"task"`
	ScheduledOn string `json:"scheduled_on"` // YYYY-MM-DD
	Status      string `json:"status"`       // Scheduled | In Progress | Completed | Cancelled
}

// ValidPlantStatus reports whether s is a known plant status.
func ValidPlantStatus(s string) bool {
	switch s {
	case PlantOperational, PlantPartial, PlantMaintenance, PlantOffline:
		return true
	}
	return false
}
