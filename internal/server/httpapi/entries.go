package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
)

const entryNotFound = "Entry not found"

func entryFilter(r *http.Request) (models.EntryFilter, error) {
	q := r.URL.Query()
	return services.EntryQuery{
		ProjectID: q.Get("projectId"),
		ClientID:  q.Get("clientId"),
		Invoiced:  q.Get("invoiced"),
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
	}.Filter()
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	f, err := entryFilter(r)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	entries, err := s.svc.Entries.List(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var in services.EntryInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	e, err := s.svc.Entries.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.Entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, entryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	var p services.EntryPatch
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	e, err := s.svc.Entries.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		s.writeError(w, r, err, entryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Entries.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, entryNotFound)
		return
	}
	writeSuccess(w)
}

// exportEntries streams the filtered entries as a CSV attachment. The body
// is buffered so a failure can still be reported as JSON.
func (s *Server) exportEntries(w http.ResponseWriter, r *http.Request) {
	f, err := entryFilter(r)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	var buf bytes.Buffer
	if err := s.svc.Entries.ExportCSV(r.Context(), f, &buf); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFileName(s.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) publishExport(w http.ResponseWriter, r *http.Request) {
	f, err := entryFilter(r)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	export, err := s.svc.Entries.PublishExport(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	s.logger.Info(r.Context(), "export published", "key", export.Key)
	writeJSON(w, http.StatusOK, export)
}
