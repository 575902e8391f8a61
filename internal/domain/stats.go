package domain

// CorrelationGrid is a weather-condition x mood-tag co-occurrence matrix.
// Conditions and Moods are the distinct values actually observed, sorted
// lexicographically; Counts[i][j] is the number of entries with condition
// Conditions[i] carrying mood Moods[j].
type CorrelationGrid struct {
	Conditions []string `json:"conditions"`
	Moods      []string `json:"moods"`
	Counts     [][]int  `json:"counts"`
}

// StatisticsSnapshot is the aggregate view over the full entry collection.
// Recomputed fully on each request, never persisted. Empty collections yield
// a zero-valued snapshot with the most-common fields empty.
type StatisticsSnapshot struct {
	TotalEntries      int             `json:"total_entries"`
	TotalWords        int             `json:"total_words"`
	AvgWordsPerEntry  float64         `json:"avg_words_per_entry"`
	MoodCounts        map[string]int  `json:"mood_distribution"`
	WeatherCounts     map[string]int  `json:"weather_distribution"`
	MostCommonMood    string          `json:"most_common_mood,omitempty"`
	MostCommonWeather string          `json:"most_common_weather,omitempty"`
	LongestStreak     int             `json:"longest_streak"`
	CurrentStreak     int             `json:"current_streak"`
	Correlation       CorrelationGrid `json:"correlation"`
}
