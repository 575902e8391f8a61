package adapthttp

import (
	"net/http"

	"skymemo/internal/domain"
)

func (s *Server) handlePrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Sample domain.WeatherSample `json:"sample"`
		Count  int                  `json:"count"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	moods := s.prompts.ResolveMoods(body.Sample)
	candidates := s.prompts.Generate(body.Sample, body.Count)
	writeJSON(w, http.StatusOK, map[string]any{
		"moods":   moods,
		"prompts": candidates,
	})
}
