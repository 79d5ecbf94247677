package service

import (
	"fmt"
	"strings"

	"solarwatch/internal/models"
)

const assistantSystemPrompt = `You are an expert assistant for solar panels and photovoltaic systems.

Your role is to analyze solar panel performance data and provide:
1. Diagnoses of possible problems
2. Recommendations for optimization
3. Predictions of when maintenance will be needed
4. Estimates of the panels' remaining useful life

Specific knowledge you hold:
- Normal solar panel degradation (0.5-1% per year)
- Common problems: hotspots, microcracks, PID (potential-induced degradation)
- Effects of soiling and weather conditions on performance
- Deterioration patterns across panel technologies (monocrystalline, polycrystalline, thin film)
- Ideal performance metrics under different conditions

When answering questions, provide:
- Evidence-based analysis of the presented data
- Clear and concise explanations
- Practical, actionable recommendations
- Confidence estimates for your predictions`

const panelAnalysisRequest = `Based on the data above:
1. What is the current health state of this solar panel?
2. Are there signs of abnormal degradation or emerging problems?
3. When will the next maintenance likely be needed?
4. Which specific actions could improve performance?
5. What is the estimated remaining useful life?`

// formatPanelContext renders a panel's data block for the model prompt.
func formatPanelContext(d *models.PanelDetail) string {
	var b strings.Builder
	b.WriteString("SOLAR PANEL DATA:\n\n")
	fmt.Fprintf(&b, "ID: %s\n", d.Panel.ID)
	fmt.Fprintf(&b, "Type: %s\n", d.Panel.PanelType)
	fmt.Fprintf(&b, "Manufacturer: %s\n", d.Panel.Manufacturer)
	fmt.Fprintf(&b, "Model: %s\n", d.Panel.Model)
	fmt.Fprintf(&b, "Installed On: %s\n", d.Panel.InstalledOn)
	fmt.Fprintf(&b, "Rated Power: %.0f W\n", d.Panel.RatedWatts)

	b.WriteString("\nPERFORMANCE METRICS:\n")
	fmt.Fprintf(&b, "Current Efficiency: %.1f%%\n", d.Panel.CurrentEfficiencyPct)
	fmt.Fprintf(&b, "Initial Efficiency: %.1f%%\n", d.Panel.InitialEfficiencyPct)
	fmt.Fprintf(&b, "Operating Temperature: %.1f C\n", d.Panel.OperatingTempC)
	fmt.Fprintf(&b, "Soiling Level: %s\n", d.Panel.Soiling)

	if len(d.Maintenance) > 0 {
		b.WriteString("\nMAINTENANCE HISTORY:\n")
		for _, m := range d.Maintenance {
			fmt.Fprintf(&b, "- Date: %s, Kind: %s, Note: %s\n", m.PerformedOn, m.Kind, m.Note)
		}
	}

	if len(d.Problems) > 0 {
		b.WriteString("\nDETECTED PROBLEMS:\n")
		for _, p := range d.Problems {
			fmt.Fprintf(&b, "- Kind: %s, Severity: %s, Date: %s, Description: %s\n", p.Kind, p.Severity, p.DetectedOn, p.Description)
		}
	}

	return b.String()
}
