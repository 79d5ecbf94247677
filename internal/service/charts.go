package service

import (
	"context"
	"time"
)

// Color palette shared by all dashboard charts.
var chartColors = []string{
	"#1976D2", // primary blue
	"#4CAF50", // green
	"#FF9800", // orange
	"#F44336", // red
	"#03A9F4", // light blue
}

const goodEfficiencyPct = 95.0

// ChartService turns monitoring/history series into render-ready chart
// configs so the frontend stays a dumb renderer.
type ChartService struct {
	monitoring Monitoring
	history    History
}

func NewChartService(monitoring Monitoring, history History) *ChartService {
	return &ChartService{monitoring: monitoring, history: history}
}

var _ Charts = (*ChartService)(nil)

// HourlyProduction builds today's production bar chart with separate
// actual and projected series.
func (s *ChartService) HourlyProduction(ctx context.Context, plantID string) (*ChartConfig, error) {
	snap, err := s.monitoring.Snapshot(ctx, plantID)
	if err != nil {
		return nil, err
	}

	actual := ChartSeries{Name: "Actual"}
	projected := ChartSeries{Name: "Projected"}
	for _, h := range snap.HourlyProduction {
		p := ChartPoint{Label: h.Hour, Value: h.EnergyKWh}
		if h.Projected {
			projected.Data = append(projected.Data, p)
		} else {
			actual.Data = append(actual.Data, p)
		}
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Today's Energy Production",
		XAxis:      "Hour",
		YAxis:      "Energy (kWh)",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     []ChartSeries{actual, projected},
		Colors:     chartColors[:2],
	}, nil
}

// DailyComparison builds the production-vs-target bar chart over a range.
func (s *ChartService) DailyComparison(ctx context.Context, plantID string, from, to time.Time) (*ChartConfig, error) {
	days, err := s.history.Range(ctx, plantID, from, to)
	if err != nil {
		return nil, err
	}

	production := ChartSeries{Name: "Production", Data: make([]ChartPoint, 0, len(days))}
	target := ChartSeries{Name: "Target", Data: make([]ChartPoint, 0, len(days))}
	for _, d := range days {
		production.Data = append(production.Data, ChartPoint{Label: d.Date, Value: d.ProductionKWh})
		target.Data = append(target.Data, ChartPoint{Label: d.Date, Value: d.TargetKWh})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Daily Production vs Target",
		XAxis:      "Date",
		YAxis:      "Energy (kWh)",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     []ChartSeries{production, target},
		Colors:     chartColors[:2],
	}, nil
}

// EfficiencyTrend builds the efficiency line chart with a reference line
// marking good performance.
func (s *ChartService) EfficiencyTrend(ctx context.Context, plantID string, from, to time.Time) (*ChartConfig, error) {
	days, err := s.history.Range(ctx, plantID, from, to)
	if err != nil {
		return nil, err
	}

	eff := ChartSeries{Name: "Efficiency", Data: make([]ChartPoint, 0, len(days))}
	for _, d := range days {
		eff.Data = append(eff.Data, ChartPoint{Label: d.Date, Value: d.EfficiencyPct})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      "Efficiency Trend",
		XAxis:      "Date",
		YAxis:      "Efficiency (%)",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     []ChartSeries{eff},
		Colors:     chartColors[:1],
		RefLine:    &RefLine{Value: goodEfficiencyPct, Label: "Good performance"},
	}, nil
}
