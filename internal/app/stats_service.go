package app

import (
	"context"
	"math"
	"sort"
	"time"

	"skymemo/internal/domain"
)

// StatsService aggregates the full entry collection into a statistics
// snapshot. Every call recomputes from scratch.
type StatsService struct {
	repo domain.EntryRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo domain.EntryRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Snapshot reads the full entry collection and builds its statistics,
// anchoring the current-streak scan at the local calendar day.
func (s *StatsService) Snapshot(ctx context.Context) (*domain.StatisticsSnapshot, error) {
	entries, err := s.repo.ListEntries(ctx, 0)
	if err != nil {
		return nil, err
	}
	snap := BuildSnapshot(entries, time.Now().In(time.Local))
	return &snap, nil
}

// BuildSnapshot aggregates entries into a statistics snapshot. Entries are
// scanned in the order given — the entry store's native newest-first order —
// which fixes the tie-break for the most-common fields: on equal counts the
// first-encountered value wins. today anchors the current-streak scan. An
// empty collection yields a zero snapshot.
func BuildSnapshot(entries []domain.JournalEntry, today time.Time) domain.StatisticsSnapshot {
	snap := domain.StatisticsSnapshot{
		MoodCounts:    map[string]int{},
		WeatherCounts: map[string]int{},
		Correlation: domain.CorrelationGrid{
			Conditions: []string{},
			Moods:      []string{},
			Counts:     [][]int{},
		},
	}
	if len(entries) == 0 {
		return snap
	}

	snap.TotalEntries = len(entries)

	var moodOrder, weatherOrder []string
	dates := make(map[string]bool)
	for _, e := range entries {
		snap.TotalWords += e.WordCount
		for _, mood := range e.MoodTags {
			if snap.MoodCounts[mood] == 0 {
				moodOrder = append(moodOrder, mood)
			}
			snap.MoodCounts[mood]++
		}
		if cond := string(e.Weather.Condition); cond != "" {
			if snap.WeatherCounts[cond] == 0 {
				weatherOrder = append(weatherOrder, cond)
			}
			snap.WeatherCounts[cond]++
		}
		if e.Date != "" {
			dates[e.Date] = true
		}
	}

	snap.AvgWordsPerEntry = math.Round(float64(snap.TotalWords)/float64(snap.TotalEntries)*10) / 10
	snap.MostCommonMood = argMax(snap.MoodCounts, moodOrder)
	snap.MostCommonWeather = argMax(snap.WeatherCounts, weatherOrder)

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	snap.LongestStreak = longestStreak(sorted)
	snap.CurrentStreak = currentStreak(dates, today)
	snap.Correlation = buildCorrelation(entries)
	return snap
}

// argMax returns the key with the highest count, walking keys in
// first-encountered scan order so ties resolve deterministically.
func argMax(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, k := range order {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// longestStreak returns the length of the longest run of calendar-consecutive
// dates. dates must be distinct YYYY-MM-DD strings sorted ascending.
func longestStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		prev, errPrev := time.Parse("2006-01-02", dates[i-1])
		curr, errCurr := time.Parse("2006-01-02", dates[i])
		if errPrev == nil && errCurr == nil && prev.AddDate(0, 0, 1).Equal(curr) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// currentStreak counts back from today while each day has an entry. A day
// without entries — including today itself — ends the streak immediately.
func currentStreak(dates map[string]bool, today time.Time) int {
	streak := 0
	for day := today; dates[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// buildCorrelation builds the weather-condition x mood-tag co-occurrence
// grid over the conditions and moods actually observed, each axis sorted
// lexicographically. Every mood tag on every entry with a condition
// contributes exactly one count.
func buildCorrelation(entries []domain.JournalEntry) domain.CorrelationGrid {
	type pair struct{ cond, mood string }

	condSet := make(map[string]bool)
	moodSet := make(map[string]bool)
	counts := make(map[pair]int)
	for _, e := range entries {
		cond := string(e.Weather.Condition)
		if cond == "" {
			continue
		}
		condSet[cond] = true
		for _, mood := range e.MoodTags {
			moodSet[mood] = true
			counts[pair{cond, mood}]++
		}
	}

	grid := domain.CorrelationGrid{
		Conditions: sortedKeys(condSet),
		Moods:      sortedKeys(moodSet),
	}
	grid.Counts = make([][]int, len(grid.Conditions))
	for i, cond := range grid.Conditions {
		grid.Counts[i] = make([]int, len(grid.Moods))
		for j, mood := range grid.Moods {
			grid.Counts[i][j] = counts[pair{cond, mood}]
		}
	}
	return grid
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
