package models

// Weather condition labels used by the snapshot view.
const (
	WeatherClear        = "Clear"
	WeatherPartlyCloudy = "Partly Cloudy"
	WeatherCloudy       = "Cloudy"
	WeatherNight        = "Night"
)

// Weather is the ambient condition at a plant location.
type Weather struct {
	Condition     string  `json:"condition"`
	TemperatureC  float64 `json:"temperature_c"`
	IrradianceWM2 float64 `json:"irradiance_wm2"`
	HumidityPct   int     `json:"humidity_pct"`
	WindSpeedKmh  float64 `json:"wind_speed_kmh"`
}
