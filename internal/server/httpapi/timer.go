package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/services"
)

const noActiveTimer = "No active timer"

type stopResponse struct {
	Success bool              `json:"success"`
	Entry   *models.TimeEntry `json:"entry,omitempty"`
}

func (s *Server) getTimer(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Timers.Current(r.Context())
	if errors.Is(err, common.ErrorNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		s.writeError(w, r, err, noActiveTimer)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) startTimer(w http.ResponseWriter, r *http.Request) {
	var in services.StartTimerInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	t, err := s.svc.Timers.Start(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateTimer(w http.ResponseWriter, r *http.Request) {
	var p services.TimerPatch
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	t, err := s.svc.Timers.Update(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err, noActiveTimer)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// stopTimer ends the session; ?save=true keeps it as an entry.
func (s *Server) stopTimer(w http.ResponseWriter, r *http.Request) {
	save := r.URL.Query().Get("save") == "true"

	entry, err := s.svc.Timers.Stop(r.Context(), save)
	if err != nil {
		s.writeError(w, r, err, noActiveTimer)
		return
	}
	if entry != nil {
		s.logger.Info(r.Context(), "timer saved", "entry_id", entry.ID, "minutes", entry.Duration)
	}
	writeJSON(w, http.StatusOK, stopResponse{Success: true, Entry: entry})
}
