package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	clientNotFound  = "Client not found"
	projectNotFound = "Project not found"
)

type nameRequest struct {
	Name string `json:"name"`
}

type projectRequest struct {
	Name     string `json:"name"`
	ClientID string `json:"clientId"`
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.Catalog.ListClients(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	c, err := s.svc.Catalog.CreateClient(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Catalog.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, clientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) renameClient(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	c, err := s.svc.Catalog.RenameClient(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		s.writeError(w, r, err, clientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Catalog.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, clientNotFound)
		return
	}
	writeSuccess(w)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.Catalog.ListProjects(r.Context(), r.URL.Query().Get("clientId"))
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	p, err := s.svc.Catalog.CreateProject(r.Context(), req.Name, req.ClientID)
	if err != nil {
		s.writeError(w, r, err, clientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Catalog.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) renameProject(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	p, err := s.svc.Catalog.RenameProject(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		s.writeError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Catalog.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err, projectNotFound)
		return
	}
	writeSuccess(w)
}
