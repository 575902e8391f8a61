package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"skymemo/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	createFn        func(ctx context.Context, username, passwordHash string) (*domain.User, error)
	countFn         func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, passwordHash)
	}
	return &domain.User{ID: 1, Username: username, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	createFn     func(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	getByTokenFn func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn     func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	sessions := &mockSessionRepo{}

	svc := NewAuthService(users, sessions)
	token, err := svc.Login(ctx, "alice", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty session token")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	users := &mockUserRepo{
		getByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{})
	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{})
	_, err := svc.Login(context.Background(), "nobody", "pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	deleted := false
	sessions := &mockSessionRepo{
		getByTokenFn: func(_ context.Context, token string) (*domain.Session, error) {
			return &domain.Session{Token: token, UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}, nil
		},
		deleteFn: func(_ context.Context, _ string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAuthService(&mockUserRepo{}, sessions)
	_, err := svc.ValidateSession(context.Background(), "stale")
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !deleted {
		t.Error("expected expired session to be deleted")
	}
}

func TestAuthService_ValidateSession_NotFound(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{})
	_, err := svc.ValidateSession(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_ValidateSession_Success(t *testing.T) {
	sessions := &mockSessionRepo{
		getByTokenFn: func(_ context.Context, token string) (*domain.Session, error) {
			return &domain.Session{Token: token, UserID: 9, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	users := &mockUserRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice"}, nil
		},
	}

	svc := NewAuthService(users, sessions)
	user, err := svc.ValidateSession(context.Background(), "good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 9 {
		t.Fatalf("expected user 9, got %d", user.ID)
	}
}

func TestAuthService_CreateInitialUser_OnlyWhenEmpty(t *testing.T) {
	users := &mockUserRepo{
		countFn: func(_ context.Context) (int, error) { return 1, nil },
	}
	svc := NewAuthService(users, &mockSessionRepo{})

	if err := svc.CreateInitialUser(context.Background(), "bob", "pass"); err == nil {
		t.Fatal("expected error when users already exist")
	}
}

func TestAuthService_LoginWithUser_AutoProvisions(t *testing.T) {
	created := false
	users := &mockUserRepo{
		createFn: func(_ context.Context, username, passwordHash string) (*domain.User, error) {
			created = true
			if passwordHash != "" {
				t.Errorf("expected empty password hash for SSO user, got %q", passwordHash)
			}
			return &domain.User{ID: 2, Username: username}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{})
	token, err := svc.LoginWithUser(context.Background(), "sso-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected missing user to be created")
	}
	if token == "" {
		t.Error("expected non-empty session token")
	}
}
