package domain

import (
	"context"
	"strings"
	"time"
)

// EntryWeather is the weather subset embedded in a persisted journal entry.
type EntryWeather struct {
	Temperature   float64   `json:"temperature"`
	Condition     Condition `json:"condition"`
	ConditionRaw  string    `json:"condition_raw"`
	Precipitation bool      `json:"precipitation"`
}

// JournalEntry is a persisted journal record. IDs are assigned by the entry
// store and increase monotonically with creation time, so they double as the
// sort key.
type JournalEntry struct {
	ID        int64        `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Date      string       `json:"date"` // local calendar day, YYYY-MM-DD
	Weather   EntryWeather `json:"weather"`
	MoodTags  []string     `json:"mood_tags"`
	Prompt    string       `json:"prompt"`
	Text      string       `json:"text"`
	WordCount int          `json:"word_count"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// CountWords returns the whitespace-delimited token count of s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// EntryRepository is the port for journal entry persistence. Implementations
// must keep entries ordered newest-first; that order is the canonical scan
// order for statistics.
type EntryRepository interface {
	// AppendEntry persists a new entry at the front of the list and returns
	// its assigned ID.
	AppendEntry(ctx context.Context, e JournalEntry) (int64, error)
	// ListEntries returns entries newest-first. limit <= 0 means all.
	ListEntries(ctx context.Context, limit int) ([]JournalEntry, error)
	// GetEntry returns the entry with the given ID, or nil if absent.
	GetEntry(ctx context.Context, id int64) (*JournalEntry, error)
	// UpdateEntryText replaces an entry's text, word count and update time.
	// Returns false if no entry has the given ID.
	UpdateEntryText(ctx context.Context, id int64, text string, wordCount int, updatedAt time.Time) (bool, error)
	// DeleteEntry removes an entry. Returns false if no entry has the given ID.
	DeleteEntry(ctx context.Context, id int64) (bool, error)
}
