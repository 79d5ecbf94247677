package models

// Panel technology types.
const (
	PanelMonocrystalline = "Monocrystalline"
	PanelPolycrystalline = "Polycrystalline"
	PanelThinFilm        = "Thin Film"
	PanelBifacial        = "Bifacial"
	PanelPERC            = "PERC"
)

// Soiling levels.
const (
	SoilingNone     = "None"
	SoilingLight    = "Light"
	SoilingModerate = "Moderate"
	SoilingHeavy    = "Heavy"
)

// Maintenance kinds.
const (
	MaintCleaning    = "Cleaning"
	MaintInspection  = "Inspection"
	MaintRepair      = "Repair"
	MaintReplacement = "Replacement"
)

// Problem kinds observed on PV panels.
const (
	ProblemHotspot       = "Hotspot"
	ProblemMicrocrack    = "Microcrack"
	ProblemPID           = "PID"
	ProblemDelamination  = "Delamination"
	ProblemDiscoloration = "Discoloration"
	ProblemCorrosion     = "Corrosion"
	ProblemSnailTrail    = "Snail Trail"
	ProblemJunctionBox   = "Junction Box"
)

// Problem severities.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Panel is a single PV module tracked for health analysis.
type Panel struct {
	ID                    string  `json:"id"`
	PlantID               string  `json:"plant_id"`
	PanelType             string  `json:"panel_type"`
	Manufacturer          string  `json:"manufacturer"`
	Model                 string  `json:"model"`
	InstalledOn           string  `json:"installed_on"` // YYYY-MM-DD
	RatedWatts            float64 `json:"rated_watts"`
	InitialEfficiencyPct  float64 `json:"initial_efficiency_pct"`
	CurrentEfficiencyPct  float64 `json:"current_efficiency_pct"`
	OperatingTempC        float64 `json:"operating_temp_c"`
	Soiling               string  `json:"soiling"` // None | Light | Moderate | Heavy
}

// PanelMaintenance is one maintenance record for a panel.
type PanelMaintenance struct {
	ID          string  `json:"id"`
	PanelID     string  `json:"panel_id"`
	PerformedOn string  `json:"performed_on"` // YYYY-MM-DD
	Kind        string  `json:"kind"`         // Cleaning | Inspection | Repair | Replacement
	Note        string  `json:"note"`
	Technician  string  `json:"technician"`
	Cost        float64 `json:"cost"`
}

// PanelProblem is a detected defect on a panel.
type PanelProblem struct {
	ID          string `json:"id"`
	PanelID     string `json:"panel_id"`
	DetectedOn  string `json:"detected_on"` // YYYY-MM-DD
	Kind        string `json:"kind"`
	Severity    string `json:"severity"` // Low | Medium | High
	Description string `json:"description"`
}

// PanelDetail bundles a panel with its maintenance and problem history.
type PanelDetail struct {
	Panel       Panel              `json:"panel"`
	Maintenance []PanelMaintenance `json:"maintenance"`
	Problems    []PanelProblem     `json:"problems"`
}

// ValidSeverity reports whether s is a known problem severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// ValidMaintenanceKind reports whether s is a known maintenance kind.
func ValidMaintenanceKind(s string) bool {
	switch s {
	case MaintCleaning, MaintInspection, MaintRepair, MaintReplacement:
		return true
	}
	return false
}

// ValidProblemKind reports whether s is a known panel problem kind.
func ValidProblemKind(s string) bool {
	switch s {
	case ProblemHotspot, ProblemMicrocrack, ProblemPID, ProblemDelamination,
		ProblemDiscoloration, ProblemCorrosion, ProblemSnailTrail, ProblemJunctionBox:
		return true
	}
	return false
}
