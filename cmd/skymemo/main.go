package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	adapthttp "skymemo/internal/adapter/http"
	"skymemo/internal/adapter/memory"
	"skymemo/internal/adapter/openweather"
	"skymemo/internal/adapter/postgres"
	"skymemo/internal/app"
	"skymemo/internal/catalog"
	"skymemo/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	var (
		entries  domain.EntryRepository
		users    domain.UserRepository
		sessions domain.SessionRepository
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		entries, users, sessions = db, db, postgres.NewSessionRepo(db)
	} else {
		log.Print("DATABASE_URL not set, using in-memory storage")
		db := memory.New()
		entries, users, sessions = db, db, db.NewSessionRepo()
	}

	var provider domain.WeatherProvider
	if apiKey := os.Getenv("OPENWEATHER_API_KEY"); apiKey != "" {
		if baseURL := os.Getenv("OPENWEATHER_BASE_URL"); baseURL != "" {
			provider = openweather.NewWithBaseURL(apiKey, baseURL)
		} else {
			provider = openweather.New(apiKey)
		}
	}

	cat := catalog.Default()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	weatherSvc := app.NewWeatherService(cat, provider)
	promptSvc := app.NewPromptService(cat, rng)
	journalSvc := app.NewJournalService(entries)
	statsSvc := app.NewStatsService(entries)
	authSvc := app.NewAuthService(users, sessions)

	srv := adapthttp.New(weatherSvc, promptSvc, journalSvc, statsSvc, authSvc, cat, webDir)
	if cfg, ok := oidcFromEnv(); ok {
		srv = srv.WithOIDC(cfg)
	}

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// oidcFromEnv builds the SSO configuration when all OIDC_* variables are set.
func oidcFromEnv() (adapthttp.OIDCConfig, bool) {
	issuer := os.Getenv("OIDC_ISSUER")
	clientID := os.Getenv("OIDC_CLIENT_ID")
	clientSecret := os.Getenv("OIDC_CLIENT_SECRET")
	redirectURL := os.Getenv("OIDC_REDIRECT_URL")
	if issuer == "" || clientID == "" || clientSecret == "" || redirectURL == "" {
		return adapthttp.OIDCConfig{}, false
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		log.Fatalf("oidc provider: %v", err)
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, true
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
