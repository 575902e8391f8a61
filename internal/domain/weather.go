// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
)

// Condition is one of the eight fixed weather categories.
type Condition string

// The fixed condition enumeration. Free text never leaves the classifier.
const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionStormy       Condition = "stormy"
	ConditionSnowy        Condition = "snowy"
	ConditionFoggy        Condition = "foggy"
	ConditionWindy        Condition = "windy"
)

// Conditions lists every condition in declared order.
func Conditions() []Condition {
	return []Condition{
		ConditionSunny, ConditionPartlyCloudy, ConditionCloudy, ConditionRainy,
		ConditionStormy, ConditionSnowy, ConditionFoggy, ConditionWindy,
	}
}

// TemperatureCategory is one of the seven fixed temperature bands.
type TemperatureCategory string

// The fixed temperature band enumeration, coldest to hottest.
const (
	TempVeryCold TemperatureCategory = "very_cold"
	TempCold     TemperatureCategory = "cold"
	TempCool     TemperatureCategory = "cool"
	TempMild     TemperatureCategory = "mild"
	TempWarm     TemperatureCategory = "warm"
	TempHot      TemperatureCategory = "hot"
	TempVeryHot  TemperatureCategory = "very_hot"
)

// Weather data sources.
const (
	SourceManual = "manual"
	SourceAPI    = "api"
)

// WeatherSample is a classified weather observation. Condition and
// TemperatureCategory always hold one of the fixed enumeration values.
type WeatherSample struct {
	Temperature         float64             `json:"temperature"`
	TemperatureCategory TemperatureCategory `json:"temperature_category"`
	Condition           Condition           `json:"condition"`
	ConditionRaw        string              `json:"condition_raw"`
	Precipitation       bool                `json:"precipitation"`
	Source              string              `json:"source"`
	City                string              `json:"city,omitempty"`
	Humidity            int                 `json:"humidity,omitempty"`
	WindSpeed           float64             `json:"wind_speed,omitempty"`
}

// WeatherObservation is the raw result of a provider lookup, before
// classification.
type WeatherObservation struct {
	Temperature float64
	Description string
	Humidity    int
	WindSpeed   float64
}

// ErrWeatherUnavailable is returned when both the live provider call and its
// cache fallback fail. Callers are expected to offer manual weather entry.
var ErrWeatherUnavailable = errors.New("weather data unavailable")

// WeatherProvider is the port for live weather lookups by city. Caching and
// retry policy belong to the implementation, not the core.
type WeatherProvider interface {
	FetchByCity(ctx context.Context, city string) (*WeatherObservation, error)
}
