// Package httpapi exposes the time tracking services as a JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address      string
	logger       logging.Logger
	svc          Services
	secureCookie bool
	now          func() time.Time
}

func NewServer(a string, l logging.Logger, svc Services, secureCookie bool) *Server {
	return &Server{
		address:      a,
		logger:       l.With("module", "http_server"),
		svc:          svc,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// Handler builds the router. Everything except /api/auth sits behind the
// auth cookie.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.requireAuth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/auth", s.authStatus)
		r.Post("/auth", s.login)
		r.Delete("/auth", s.logout)

		r.Get("/timer", s.getTimer)
		r.Post("/timer", s.startTimer)
		r.Put("/timer", s.updateTimer)
		r.Delete("/timer", s.stopTimer)

		r.Get("/clients", s.listClients)
		r.Post("/clients", s.createClient)
		r.Get("/clients/{id}", s.getClient)
		r.Put("/clients/{id}", s.renameClient)
		r.Delete("/clients/{id}", s.deleteClient)

		r.Get("/projects", s.listProjects)
		r.Post("/projects", s.createProject)
		r.Get("/projects/{id}", s.getProject)
		r.Put("/projects/{id}", s.renameProject)
		r.Delete("/projects/{id}", s.deleteProject)

		r.Get("/entries", s.listEntries)
		r.Post("/entries", s.createEntry)
		r.Get("/entries/export.csv", s.exportEntries)
		r.Get("/entries/{id}", s.getEntry)
		r.Put("/entries/{id}", s.updateEntry)
		r.Delete("/entries/{id}", s.deleteEntry)

		r.Post("/exports", s.publishExport)

		r.Get("/settings", s.getSettings)
		r.Put("/settings", s.updateSettings)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
