// Package catalog holds the fixed lookup tables driving weather
// classification, mood resolution and prompt synthesis. A Catalog is built
// once at process start and passed into the services that need it; nothing
// here is mutated after construction.
package catalog

import (
	"skymemo/internal/domain"
)

// MoodProfile is one row of the weather-to-mood table.
type MoodProfile struct {
	PrimaryMood    string
	SecondaryMoods []string
	// Description is the "descriptive" phrase substituted into prompt
	// templates for this condition.
	Description string
}

// KeywordRule maps a condition to the substrings that classify it. Rules are
// evaluated in declared order; overlapping keywords resolve to the earliest
// rule, not the most specific one.
type KeywordRule struct {
	Condition domain.Condition
	Keywords  []string
}

// TempBand is one temperature threshold. Bands are evaluated hottest-first;
// the first band whose MinC is <= the sample temperature wins.
type TempBand struct {
	Category domain.TemperatureCategory
	MinC     float64
}

// Catalog bundles every fixed table.
type Catalog struct {
	// WeatherMoods maps each condition to its mood profile.
	WeatherMoods map[domain.Condition]MoodProfile
	// TempBands is the ordered threshold list for temperature classification.
	TempBands []TempBand
	// TempMoods lists the moods each temperature band contributes as
	// secondary moods.
	TempMoods map[domain.TemperatureCategory][]string
	// KeywordRules is the ordered condition keyword list.
	KeywordRules []KeywordRule
	// Templates maps a mood to its prompt template set. Templates use the
	// {weather_desc} and {weather_condition} placeholders.
	Templates map[string][]string
	// MoodColors maps mood tags to display colors for the UI layer.
	MoodColors map[string]string
}

// FallbackCondition is used when a condition is somehow unmapped in the
// weather-to-mood table.
const FallbackCondition = domain.ConditionPartlyCloudy

// Profile returns the mood profile for condition, falling back to the
// partly_cloudy row for unmapped values.
func (c *Catalog) Profile(condition domain.Condition) MoodProfile {
	if p, ok := c.WeatherMoods[condition]; ok {
		return p
	}
	return c.WeatherMoods[FallbackCondition]
}
