package service

import (
	"testing"
	"time"

	"solarwatch/internal/models"
)

func TestWeatherService_DeterministicWithinHour(t *testing.T) {
	svc := NewWeatherService()
	at := time.Date(2026, 8, 20, 13, 10, 0, 0, time.UTC)
	later := time.Date(2026, 8, 20, 13, 50, 0, 0, time.UTC)

	a := svc.Current("Phoenix, AZ", at)
	b := svc.Current("Phoenix, AZ", later)

	if a.Condition != b.Condition {
		t.Fatalf("conditions differ within the hour: %q vs %q", a.Condition, b.Condition)
	}
	if a.HumidityPct != b.HumidityPct {
		t.Fatalf("humidity differs within the hour: %d vs %d", a.HumidityPct, b.HumidityPct)
	}
}

func TestWeatherService_LocationsDiffer(t *testing.T) {
	svc := NewWeatherService()
	at := time.Date(2026, 8, 20, 13, 0, 0, 0, time.UTC)

	a := svc.Current("Phoenix, AZ", at)
	b := svc.Current("San Diego, CA", at)

	// Different seeds should yield different randomized values in at least
	// one of the sampled fields.
	if a.HumidityPct == b.HumidityPct && a.WindSpeedKmh == b.WindSpeedKmh && a.IrradianceWM2 == b.IrradianceWM2 {
		t.Fatalf("expected different locations to produce different weather, got %+v for both", a)
	}
}

func TestWeatherService_NightHasNoIrradiance(t *testing.T) {
	svc := NewWeatherService()
	at := time.Date(2026, 8, 20, 2, 0, 0, 0, time.UTC)

	w := svc.Current("Phoenix, AZ", at)
	if w.IrradianceWM2 != 0 {
		t.Fatalf("expected zero irradiance at night, got %v", w.IrradianceWM2)
	}
	if w.Condition != models.WeatherNight && w.Condition != models.WeatherCloudy {
		t.Fatalf("unexpected night condition: %q", w.Condition)
	}
}

func TestWeatherService_DaylightBounds(t *testing.T) {
	svc := NewWeatherService()
	at := time.Date(2026, 8, 20, 12, 30, 0, 0, time.UTC)

	w := svc.Current("Phoenix, AZ", at)
	if w.IrradianceWM2 <= 0 || w.IrradianceWM2 > PeakIrradianceWM2 {
		t.Fatalf("irradiance out of range: %v", w.IrradianceWM2)
	}
	if w.HumidityPct < 30 || w.HumidityPct > 80 {
		t.Fatalf("humidity out of range: %d", w.HumidityPct)
	}
	if w.WindSpeedKmh < 0 || w.WindSpeedKmh > 25 {
		t.Fatalf("wind speed out of range: %v", w.WindSpeedKmh)
	}
	switch w.Condition {
	case models.WeatherClear, models.WeatherPartlyCloudy, models.WeatherCloudy:
	default:
		t.Fatalf("unexpected daylight condition: %q", w.Condition)
	}
}
