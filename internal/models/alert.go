package models

import "time"

// Alert levels.
const (
	AlertCritical    = "Critical"
	AlertWarning     = "Warning"
	AlertInformation = "Information"
)

// Alert is a plant condition that needs operator attention.
// Active until acknowledged; acknowledged alerts form the history.
type Alert struct {
	ID           string     `json:"id"`
	PlantID      string     `json:"plant_id"`
	Level        string     `json:"level"` // Critical | Warning | Information
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	Acknowledged bool       `json:"acknowledged"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	Resolution   string     `json:"resolution,omitempty"`
}

// ValidAlertLevel reports whether s is a known alert level.
func ValidAlertLevel(s string) bool {
	switch s {
	case AlertCritical, AlertWarning, AlertInformation:
		return true
	}
	return false
}
