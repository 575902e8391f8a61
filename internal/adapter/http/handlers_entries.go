package adapthttp

import (
	"errors"
	"net/http"

	"skymemo/internal/domain"
)

// defaultListLimit caps entry listings when the client does not ask for a
// specific limit.
const defaultListLimit = 50

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listEntries(w, r)
	case http.MethodPost:
		s.createEntry(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []domain.JournalEntry
		err   error
	)
	switch {
	case q.Get("mood") != "":
		items, err = s.journal.ListByMood(r.Context(), q.Get("mood"))
	case q.Get("from") != "" || q.Get("to") != "":
		items, err = s.journal.ListByDateRange(r.Context(), q.Get("from"), q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	default:
		items, err = s.journal.List(r.Context(), intQuery(r, "limit", defaultListLimit))
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Sample   domain.WeatherSample `json:"sample"`
		MoodTags []string             `json:"mood_tags"`
		Prompt   string               `json:"prompt"`
		Text     string               `json:"text"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Text == "" {
		writeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	entry, err := s.journal.Create(r.Context(), body.Sample, body.MoodTags, body.Prompt, body.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleEntryUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ok, err := s.journal.UpdateText(r.Context(), body.ID, body.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("entry not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": true, "id": body.ID})
}

func (s *Server) handleEntryDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID int64 `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ok, err := s.journal.Delete(r.Context(), body.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("entry not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "id": body.ID})
}
