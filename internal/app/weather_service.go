// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"strings"

	"skymemo/internal/catalog"
	"skymemo/internal/domain"
)

// WeatherService classifies raw weather input into the fixed categories and
// resolves live lookups through the weather provider port.
type WeatherService struct {
	cat      *catalog.Catalog
	provider domain.WeatherProvider
}

// NewWeatherService creates a WeatherService using the given catalog and
// provider. The provider may be nil, in which case city lookups always
// report unavailable.
func NewWeatherService(cat *catalog.Catalog, provider domain.WeatherProvider) *WeatherService {
	return &WeatherService{cat: cat, provider: provider}
}

// ClassifyCondition maps a free-text weather description to a fixed
// condition. Keyword rules are checked in catalog order; the first substring
// match wins. Unmatched text classifies as partly_cloudy.
func (s *WeatherService) ClassifyCondition(description string) domain.Condition {
	description = strings.ToLower(description)
	for _, rule := range s.cat.KeywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(description, kw) {
				return rule.Condition
			}
		}
	}
	return catalog.FallbackCondition
}

// ClassifyTemperature maps a Celsius temperature to a fixed band. Bands are
// checked hottest-first; anything below every threshold is very_cold.
func (s *WeatherService) ClassifyTemperature(tempC float64) domain.TemperatureCategory {
	for _, band := range s.cat.TempBands {
		if tempC >= band.MinC {
			return band.Category
		}
	}
	return domain.TempVeryCold
}

// BuildManualSample classifies manually entered weather. A precipitation
// report upgrades a plain cloudy classification to rainy; no other condition
// is affected.
func (s *WeatherService) BuildManualSample(temperature float64, conditionText string, precipitation bool) domain.WeatherSample {
	condition := s.ClassifyCondition(conditionText)
	if precipitation && condition == domain.ConditionCloudy {
		condition = domain.ConditionRainy
	}
	return domain.WeatherSample{
		Temperature:         temperature,
		TemperatureCategory: s.ClassifyTemperature(temperature),
		Condition:           condition,
		ConditionRaw:        conditionText,
		Precipitation:       precipitation,
		Source:              domain.SourceManual,
	}
}

// FetchCity looks up current weather for a city through the provider and
// classifies the result. Precipitation is derived from the description text.
// Returns domain.ErrWeatherUnavailable when no provider is configured or the
// provider (including its cache fallback) has nothing to offer.
func (s *WeatherService) FetchCity(ctx context.Context, city string) (*domain.WeatherSample, error) {
	if s.provider == nil {
		return nil, domain.ErrWeatherUnavailable
	}
	obs, err := s.provider.FetchByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	desc := strings.ToLower(obs.Description)
	sample := domain.WeatherSample{
		Temperature:         obs.Temperature,
		TemperatureCategory: s.ClassifyTemperature(obs.Temperature),
		Condition:           s.ClassifyCondition(obs.Description),
		ConditionRaw:        obs.Description,
		Precipitation:       strings.Contains(desc, "rain") || strings.Contains(desc, "snow"),
		Source:              domain.SourceAPI,
		City:                city,
		Humidity:            obs.Humidity,
		WindSpeed:           obs.WindSpeed,
	}
	return &sample, nil
}

// DescribeSample renders a short human-readable summary of a sample.
func (s *WeatherService) DescribeSample(sample domain.WeatherSample) string {
	var tempDesc string
	switch {
	case sample.Temperature < 0:
		tempDesc = "freezing"
	case sample.Temperature < 10:
		tempDesc = "cold"
	case sample.Temperature < 20:
		tempDesc = "cool"
	case sample.Temperature < 25:
		tempDesc = "pleasant"
	case sample.Temperature < 30:
		tempDesc = "warm"
	default:
		tempDesc = "hot"
	}

	out := fmt.Sprintf("%s and %s (%.1f°C)", tempDesc,
		strings.ReplaceAll(string(sample.Condition), "_", " "), sample.Temperature)
	if sample.Precipitation {
		out += " with precipitation"
	}
	return out
}
