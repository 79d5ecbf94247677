package service

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"solarwatch/internal/models"
)

// WeatherService simulates ambient conditions per plant location. Conditions
// are derived from a per-location, per-hour seed so repeated reads within the
// same hour agree with each other.
type WeatherService struct{}

func NewWeatherService() *WeatherService { return &WeatherService{} }

var _ Weather = (*WeatherService)(nil)

// Current returns the simulated weather for a location at the given time.
func (s *WeatherService) Current(location string, at time.Time) models.Weather {
	rng := rand.New(rand.NewSource(weatherSeed(location, at)))

	hour := float64(at.Hour()) + float64(at.Minute())/60
	month := int(at.Month())

	// Temperature: higher base in summer, warms through the day.
	baseTemp := 15.0
	if month >= 4 && month <= 9 {
		baseTemp += 10
	}
	timeFactor := 0.0
	if isDaylight(at.Hour()) {
		timeFactor = (hour - SunriseHour) / 13 * 10
	}
	temperature := round1(baseTemp + timeFactor + rng.Float64()*6 - 3)

	if !isDaylight(at.Hour()) {
		condition := models.WeatherNight
		if rng.Float64() >= 0.8 {
			condition = models.WeatherCloudy
		}
		return models.Weather{
			Condition:     condition,
			TemperatureC:  temperature,
			IrradianceWM2: 0,
			HumidityPct:   30 + rng.Intn(51),
			WindSpeedKmh:  round1(rng.Float64() * 25),
		}
	}

	base := PeakIrradianceWM2 * solarCurveFactor(hour)

	var (
		condition string
		factor    float64
	)
	switch roll := rng.Float64(); {
	case roll < 0.6:
		condition = models.WeatherClear
		factor = 0.9 + rng.Float64()*0.1
	case roll < 0.8:
		condition = models.WeatherPartlyCloudy
		factor = 0.6 + rng.Float64()*0.2
	default:
		condition = models.WeatherCloudy
		factor = 0.2 + rng.Float64()*0.3
	}

	return models.Weather{
		Condition:     condition,
		TemperatureC:  temperature,
		IrradianceWM2: math.Round(base * factor),
		HumidityPct:   30 + rng.Intn(51),
		WindSpeedKmh:  round1(rng.Float64() * 25),
	}
}

// weatherSeed keeps the simulation stable within one hour per location.
func weatherSeed(location string, at time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(location))
	_, _ = h.Write([]byte(at.UTC().Format("2006-01-02T15")))
	return int64(h.Sum64())
}
