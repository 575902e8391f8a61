package app

import (
	"context"
	"errors"
	"slices"
	"time"

	"skymemo/internal/domain"
)

// MaxMoodTags is the most mood tags persisted per entry, primary first.
const MaxMoodTags = 3

// JournalService encapsulates the journal entry lifecycle on top of the
// entry repository.
type JournalService struct {
	repo domain.EntryRepository
}

// NewJournalService creates a JournalService backed by the given repository.
func NewJournalService(repo domain.EntryRepository) *JournalService {
	return &JournalService{repo: repo}
}

// Create persists a new entry built from a classified sample, the chosen
// mood tags and prompt, and the body text. Mood tags beyond MaxMoodTags are
// dropped; the word count is derived from the text.
func (s *JournalService) Create(ctx context.Context, sample domain.WeatherSample, moodTags []string, prompt, text string) (*domain.JournalEntry, error) {
	if len(moodTags) > MaxMoodTags {
		moodTags = moodTags[:MaxMoodTags]
	}

	now := time.Now()
	entry := domain.JournalEntry{
		Timestamp: now,
		Date:      now.In(time.Local).Format("2006-01-02"),
		Weather: domain.EntryWeather{
			Temperature:   sample.Temperature,
			Condition:     sample.Condition,
			ConditionRaw:  sample.ConditionRaw,
			Precipitation: sample.Precipitation,
		},
		MoodTags:  moodTags,
		Prompt:    prompt,
		Text:      text,
		WordCount: domain.CountWords(text),
	}

	id, err := s.repo.AppendEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

// List returns entries newest-first up to limit. limit <= 0 means all.
func (s *JournalService) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	return s.repo.ListEntries(ctx, limit)
}

// Get returns the entry with the given ID, or nil if absent.
func (s *JournalService) Get(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	return s.repo.GetEntry(ctx, id)
}

// ListByMood returns entries carrying the given mood tag, newest-first.
func (s *JournalService) ListByMood(ctx context.Context, mood string) ([]domain.JournalEntry, error) {
	entries, err := s.repo.ListEntries(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if slices.Contains(e.MoodTags, mood) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByDateRange returns entries whose date falls within [from, to]
// inclusive, newest-first. Dates are YYYY-MM-DD strings, so the comparison
// is plain lexical order.
func (s *JournalService) ListByDateRange(ctx context.Context, from, to string) ([]domain.JournalEntry, error) {
	if from == "" || to == "" {
		return nil, errors.New("both from and to dates are required")
	}
	entries, err := s.repo.ListEntries(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if from <= e.Date && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

// UpdateText replaces an entry's body text, recomputing the word count and
// stamping the update time. Returns false if no entry has the given ID.
func (s *JournalService) UpdateText(ctx context.Context, id int64, text string) (bool, error) {
	return s.repo.UpdateEntryText(ctx, id, text, domain.CountWords(text), time.Now())
}

// Delete removes an entry. Returns false if no entry has the given ID.
func (s *JournalService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteEntry(ctx, id)
}
