package adapthttp

import (
	"net/http"

	"skymemo/internal/app"
	"skymemo/internal/catalog"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weather *app.WeatherService
	prompts *app.PromptService
	journal *app.JournalService
	stats   *app.StatsService
	authSvc *app.AuthService
	cat     *catalog.Catalog

	oidcConfig  OIDCConfig
	webDir      string
	disableAuth bool
}

// OIDCConfig carries the optional SSO settings.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// New creates a Server wired to the given application services.
func New(ws *app.WeatherService, ps *app.PromptService, js *app.JournalService, ss *app.StatsService, as *app.AuthService, cat *catalog.Catalog, webDir string) *Server {
	return &Server{weather: ws, prompts: ps, journal: js, stats: ss, authSvc: as, cat: cat, webDir: webDir}
}

// WithOIDC enables the SSO login flow.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithoutAuth disables session checks, for tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.HandleFunc("/config", s.handleConfig)

	protected := http.NewServeMux()
	protected.HandleFunc("/weather/manual", s.handleWeatherManual)
	protected.HandleFunc("/weather/city", s.handleWeatherCity)
	protected.HandleFunc("/prompts", s.handlePrompts)
	protected.HandleFunc("/entries", s.handleEntries)
	protected.HandleFunc("/entries/update", s.handleEntryUpdate)
	protected.HandleFunc("/entries/delete", s.handleEntryDelete)
	protected.HandleFunc("/stats", s.handleStats)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
