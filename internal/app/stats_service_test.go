package app_test

import (
	"context"
	"testing"
	"time"

	"skymemo/internal/app"
	"skymemo/internal/domain"
)

func dateOffset(today time.Time, days int) string {
	return today.AddDate(0, 0, days).Format("2006-01-02")
}

func TestBuildSnapshot_Empty(t *testing.T) {
	snap := app.BuildSnapshot(nil, time.Now())

	if snap.TotalEntries != 0 || snap.TotalWords != 0 || snap.AvgWordsPerEntry != 0 {
		t.Errorf("expected zero totals, got %+v", snap)
	}
	if snap.MostCommonMood != "" || snap.MostCommonWeather != "" {
		t.Errorf("expected absent most-common fields, got %q / %q", snap.MostCommonMood, snap.MostCommonWeather)
	}
	if snap.LongestStreak != 0 || snap.CurrentStreak != 0 {
		t.Errorf("expected zero streaks, got %d / %d", snap.LongestStreak, snap.CurrentStreak)
	}
	if len(snap.Correlation.Conditions) != 0 || len(snap.Correlation.Moods) != 0 {
		t.Errorf("expected empty correlation grid, got %+v", snap.Correlation)
	}
}

func TestBuildSnapshot_Totals(t *testing.T) {
	entries := []domain.JournalEntry{
		{Date: "2026-08-24", WordCount: 100, MoodTags: []string{"calm"}},
		{Date: "2026-08-23", WordCount: 51, MoodTags: []string{"calm"}},
		{Date: "2026-08-22", WordCount: 50, MoodTags: []string{"cozy"}},
	}
	snap := app.BuildSnapshot(entries, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	if snap.TotalEntries != 3 {
		t.Errorf("expected 3 entries, got %d", snap.TotalEntries)
	}
	if snap.TotalWords != 201 {
		t.Errorf("expected 201 words, got %d", snap.TotalWords)
	}
	if snap.AvgWordsPerEntry != 67.0 {
		t.Errorf("expected average 67.0, got %v", snap.AvgWordsPerEntry)
	}
	if snap.MostCommonMood != "calm" {
		t.Errorf("expected most common mood calm, got %q", snap.MostCommonMood)
	}
}

func TestBuildSnapshot_MostCommonTieBreak(t *testing.T) {
	// cozy and calm both occur twice; cozy is encountered first in the
	// store's newest-first scan order and wins the tie.
	entries := []domain.JournalEntry{
		{Date: "2026-08-24", MoodTags: []string{"cozy"}, Weather: domain.EntryWeather{Condition: domain.ConditionRainy}},
		{Date: "2026-08-23", MoodTags: []string{"calm"}, Weather: domain.EntryWeather{Condition: domain.ConditionSunny}},
		{Date: "2026-08-22", MoodTags: []string{"cozy"}, Weather: domain.EntryWeather{Condition: domain.ConditionSunny}},
		{Date: "2026-08-21", MoodTags: []string{"calm"}, Weather: domain.EntryWeather{Condition: domain.ConditionRainy}},
	}
	snap := app.BuildSnapshot(entries, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	if snap.MostCommonMood != "cozy" {
		t.Errorf("expected tie broken by scan order (cozy), got %q", snap.MostCommonMood)
	}
	if snap.MostCommonWeather != string(domain.ConditionRainy) {
		t.Errorf("expected tie broken by scan order (rainy), got %q", snap.MostCommonWeather)
	}
}

func TestBuildSnapshot_CurrentStreakZeroWithoutToday(t *testing.T) {
	// Dates D-3..D-1 with D absent: longest streak 3, current streak 0 even
	// though a run ended yesterday.
	today := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{Date: dateOffset(today, -1)},
		{Date: dateOffset(today, -2)},
		{Date: dateOffset(today, -3)},
	}
	snap := app.BuildSnapshot(entries, today)

	if snap.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", snap.LongestStreak)
	}
	if snap.CurrentStreak != 0 {
		t.Errorf("expected current streak 0, got %d", snap.CurrentStreak)
	}
}

func TestBuildSnapshot_CurrentStreakIncludesToday(t *testing.T) {
	today := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{Date: dateOffset(today, 0)},
		{Date: dateOffset(today, -1)},
		{Date: dateOffset(today, -2)},
	}
	snap := app.BuildSnapshot(entries, today)

	if snap.CurrentStreak != 3 {
		t.Errorf("expected current streak 3, got %d", snap.CurrentStreak)
	}
	if snap.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", snap.LongestStreak)
	}
}

func TestBuildSnapshot_LongestStreakWithGaps(t *testing.T) {
	today := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		// Two entries on the same day count once.
		{Date: "2026-08-10"}, {Date: "2026-08-10"},
		{Date: "2026-08-11"},
		{Date: "2026-08-12"},
		{Date: "2026-08-13"},
		// Gap, then a shorter run.
		{Date: "2026-08-20"},
		{Date: "2026-08-21"},
	}
	snap := app.BuildSnapshot(entries, today)

	if snap.LongestStreak != 4 {
		t.Errorf("expected longest streak 4, got %d", snap.LongestStreak)
	}
	if snap.CurrentStreak != 0 {
		t.Errorf("expected current streak 0, got %d", snap.CurrentStreak)
	}
}

func TestBuildSnapshot_SingleDate(t *testing.T) {
	today := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	snap := app.BuildSnapshot([]domain.JournalEntry{{Date: "2026-08-01"}}, today)
	if snap.LongestStreak != 1 {
		t.Errorf("expected longest streak 1, got %d", snap.LongestStreak)
	}
}

func TestBuildSnapshot_CorrelationGrid(t *testing.T) {
	entries := []domain.JournalEntry{
		{Date: "2026-08-24", Weather: domain.EntryWeather{Condition: domain.ConditionRainy}, MoodTags: []string{"reflective", "cozy"}},
		{Date: "2026-08-23", Weather: domain.EntryWeather{Condition: domain.ConditionSunny}, MoodTags: []string{"energetic"}},
	}
	snap := app.BuildSnapshot(entries, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC))
	grid := snap.Correlation

	wantConds := []string{"rainy", "sunny"}
	wantMoods := []string{"cozy", "energetic", "reflective"}
	if len(grid.Conditions) != 2 || grid.Conditions[0] != wantConds[0] || grid.Conditions[1] != wantConds[1] {
		t.Fatalf("expected conditions %v, got %v", wantConds, grid.Conditions)
	}
	if len(grid.Moods) != 3 {
		t.Fatalf("expected moods %v, got %v", wantMoods, grid.Moods)
	}
	for i, m := range wantMoods {
		if grid.Moods[i] != m {
			t.Fatalf("expected moods %v, got %v", wantMoods, grid.Moods)
		}
	}

	cell := func(cond, mood string) int {
		for i, c := range grid.Conditions {
			for j, m := range grid.Moods {
				if c == cond && m == mood {
					return grid.Counts[i][j]
				}
			}
		}
		t.Fatalf("cell (%s, %s) not in grid", cond, mood)
		return 0
	}

	if cell("rainy", "reflective") != 1 || cell("rainy", "cozy") != 1 || cell("sunny", "energetic") != 1 {
		t.Error("expected each observed co-occurrence to count once")
	}

	total := 0
	for _, row := range grid.Counts {
		for _, n := range row {
			total += n
		}
	}
	if total != 3 {
		t.Errorf("expected grid total 3, got %d", total)
	}
}

func TestStatsSnapshot_ReadsFullCollection(t *testing.T) {
	repo := &mockEntryRepo{
		listFn: func(_ context.Context, limit int) ([]domain.JournalEntry, error) {
			if limit != 0 {
				t.Errorf("expected full scan, got limit %d", limit)
			}
			return []domain.JournalEntry{{Date: "2026-01-01", WordCount: 10, MoodTags: []string{"calm"}}}, nil
		},
	}
	svc := app.NewStatsService(repo)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.TotalEntries != 1 || snap.TotalWords != 10 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
