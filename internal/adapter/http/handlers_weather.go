package adapthttp

import (
	"errors"
	"net/http"

	"skymemo/internal/domain"
)

func (s *Server) handleWeatherManual(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Temperature   float64 `json:"temperature"`
		Condition     string  `json:"condition"`
		Precipitation bool    `json:"precipitation"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sample := s.weather.BuildManualSample(body.Temperature, body.Condition, body.Precipitation)
	writeJSON(w, http.StatusOK, map[string]any{
		"sample":  sample,
		"summary": s.weather.DescribeSample(sample),
	})
}

func (s *Server) handleWeatherCity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	sample, err := s.weather.FetchCity(r.Context(), name)
	if errors.Is(err, domain.ErrWeatherUnavailable) {
		// No live data and no cache: the client falls back to manual entry.
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sample":  sample,
		"summary": s.weather.DescribeSample(*sample),
	})
}
