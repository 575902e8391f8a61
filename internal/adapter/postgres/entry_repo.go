package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skymemo/internal/domain"

	"github.com/lib/pq"
)

const entryColumns = "id, timestamp, date, temperature, condition, condition_raw, precipitation, mood_tags, prompt, text, word_count, updated_at"

// AppendEntry inserts a new journal entry and returns its assigned ID.
func (d *DB) AppendEntry(ctx context.Context, e domain.JournalEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO entries(timestamp, date, temperature, condition, condition_raw, precipitation, mood_tags, prompt, text, word_count)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		e.Timestamp.UTC(), e.Date, e.Weather.Temperature, string(e.Weather.Condition),
		e.Weather.ConditionRaw, e.Weather.Precipitation, pq.Array(e.MoodTags),
		e.Prompt, e.Text, e.WordCount,
	).Scan(&id)
	return id, err
}

// ListEntries returns entries newest-first. limit <= 0 means all.
func (d *DB) ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := "SELECT " + entryColumns + " FROM entries ORDER BY id DESC"

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = d.sql.QueryContext(ctx, query+" LIMIT $1;", limit)
	} else {
		rows, err = d.sql.QueryContext(ctx, query+";")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.JournalEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// GetEntry returns the entry with the given ID, or nil if absent.
func (d *DB) GetEntry(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	row := d.sql.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM entries WHERE id=$1;", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEntryText replaces an entry's text, word count and update time.
// Returns false if no entry has the given ID.
func (d *DB) UpdateEntryText(ctx context.Context, id int64, text string, wordCount int, updatedAt time.Time) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE entries SET text=$1, word_count=$2, updated_at=$3 WHERE id=$4;",
		text, wordCount, updatedAt.UTC(), id,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteEntry removes an entry. Returns false if no entry has the given ID.
func (d *DB) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM entries WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var (
		e         domain.JournalEntry
		condition string
		moodTags  pq.StringArray
		updatedAt sql.NullTime
	)
	err := row.Scan(&e.ID, &e.Timestamp, &e.Date, &e.Weather.Temperature, &condition,
		&e.Weather.ConditionRaw, &e.Weather.Precipitation, &moodTags,
		&e.Prompt, &e.Text, &e.WordCount, &updatedAt)
	if err != nil {
		return nil, err
	}
	e.Weather.Condition = domain.Condition(condition)
	e.MoodTags = []string(moodTags)
	if updatedAt.Valid {
		t := updatedAt.Time
		e.UpdatedAt = &t
	}
	return &e, nil
}
