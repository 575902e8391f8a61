// Package memory implements the repository ports in process memory, for
// development and testing.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"skymemo/internal/domain"
)

// DB implements the entry, user and session repositories over in-memory
// slices and maps. The mutex only guards the shared collections; every call
// is synchronous.
type DB struct {
	mu       sync.Mutex
	entries  []domain.JournalEntry // newest first
	users    []*domain.User
	sessions map[string]*domain.Session

	entryIDCounter int64
	userIDCounter  int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.EntryRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- EntryRepository ---

// AppendEntry inserts a new entry at the front of the list and assigns the
// next ID.
func (db *DB) AppendEntry(ctx context.Context, e domain.JournalEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.entryIDCounter++
	e.ID = db.entryIDCounter

	db.entries = append([]domain.JournalEntry{e}, db.entries...)
	return e.ID, nil
}

// ListEntries returns entries newest-first. limit <= 0 means all.
func (db *DB) ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := len(db.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.JournalEntry, n)
	copy(out, db.entries[:n])
	return out, nil
}

// GetEntry returns the entry with the given ID, or nil if absent.
func (db *DB) GetEntry(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id {
			e := db.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

// UpdateEntryText replaces an entry's text, word count and update time.
func (db *DB) UpdateEntryText(ctx context.Context, id int64, text string, wordCount int, updatedAt time.Time) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id {
			db.entries[i].Text = text
			db.entries[i].WordCount = wordCount
			t := updatedAt
			db.entries[i].UpdatedAt = &t
			return true, nil
		}
	}
	return false, nil
}

// DeleteEntry removes an entry by ID.
func (db *DB) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == id {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username, or nil if absent.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID, or nil if absent.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence on top of DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps the DB as a SessionRepository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token, or nil if absent or expired.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.db.sessions, token)
		return nil, nil
	}
	return s, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
