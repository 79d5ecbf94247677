package service

import "math"

// ----------- Production model constants -----------
const (
	SunriseHour       = 6    // production starts
	SunsetHour        = 19   // production ends
	SolarNoon         = 12.5 // curve peak, hours
	CurveHalfWidth    = 8.0  // hours from peak to zero
	PeakIrradianceWM2 = 1000.0

	BaseEfficiencyPct = 96.0 // nameplate efficiency at 25 °C
	DerateThresholdC  = 25.0 // derating starts above this ambient temperature
	DeratePerC        = 0.4  // efficiency points lost per °C above threshold

	ActualOutputFactor  = 0.90 // losses applied to realized production
	ProjectedFactor     = 0.85 // conservative factor for projected hours
	PartialDeratePct    = 0.75 // output factor for Partially Operational plants
	PerformanceRatioFit = 0.96 // PR relative to instantaneous efficiency
)

// solarCurveFactor returns the production fraction [0,1] for a fractional
// hour of day: a triangular curve peaking at solar noon, zero at night.
func solarCurveFactor(hour float64) float64 {
	if hour < SunriseHour || hour >= SunsetHour {
		return 0
	}
	f := 1.0 - math.Abs(hour-SolarNoon)/CurveHalfWidth
	if f < 0 {
		return 0
	}
	return f
}

// isDaylight reports whether the given hour of day falls in production hours.
func isDaylight(hour int) bool {
	return hour >= SunriseHour && hour < SunsetHour
}

// efficiencyAt returns panel efficiency in percent for an ambient temperature.
func efficiencyAt(ambientC float64) float64 {
	derate := 0.0
	if ambientC > DerateThresholdC {
		derate = (ambientC - DerateThresholdC) * DeratePerC
	}
	return round1(BaseEfficiencyPct - derate)
}

// round1 rounds to one decimal, the resolution used throughout the dashboard.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
