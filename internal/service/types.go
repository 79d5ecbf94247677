package service

import (
	"errors"

	"solarwatch/internal/models"
)

// ErrValidation marks rejected input so handlers can answer 400 instead
// of 500. Wrap with %w and a specific message.
var ErrValidation = errors.New("invalid input")

// AlertFilter narrows alert listings. Empty fields mean no filter.
type AlertFilter struct {
	PlantID string
	Level   string // "", "Critical", "Warning", "Information"
}

// PlantDetails is a plant with its maintenance schedule attached.
type PlantDetails struct {
	models.Plant
	MaintenanceSchedule []models.MaintenanceTask `json:"maintenance_schedule"`
}

// ChartPoint is one labeled value of a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartConfig is a render-ready chart description consumed by the frontend.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "line"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors"`
	RefLine    *RefLine      `json:"refLine,omitempty"`
}

// RefLine is a horizontal reference line drawn across a chart.
type RefLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}
