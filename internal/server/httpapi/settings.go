package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/pomokeeper/internal/server/services"
)

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.Settings.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var p services.SettingsPatch
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	settings, err := s.svc.Settings.Update(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
