package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/repomanager"
)

var (
	ErrNameRequired     = common.NewValidationError("Name is required")
	ErrClientIDRequired = common.NewValidationError("Client ID is required")
)

// CatalogService manages clients and their projects.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m, now: time.Now}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// ListClients returns every client with its projects, both newest first.
func (s *CatalogService) ListClients(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.repomanager.Clients(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.repomanager.Projects(s.db).List(ctx, "")
	if err != nil {
		return nil, err
	}

	byClient := make(map[string][]*models.Project, len(clients))
	for _, p := range projects {
		p.Client = nil
		byClient[p.ClientID] = append(byClient[p.ClientID], p)
	}
	for _, c := range clients {
		c.Projects = byClient[c.ID]
		if c.Projects == nil {
			c.Projects = []*models.Project{}
		}
	}
	return clients, nil
}

// GetClient returns a client with its projects.
func (s *CatalogService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.loadClient(ctx, s.db, id)
}

func (s *CatalogService) loadClient(ctx context.Context, db dbx.DBTX, id string) (*models.Client, error) {
	c, err := s.repomanager.Clients(db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	projects, err := s.repomanager.Projects(db).List(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.Client = nil
	}
	c.Projects = projects
	return c, nil
}

func (s *CatalogService) CreateClient(ctx context.Context, name string) (*models.Client, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &models.Client{ID: newID(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.repomanager.Clients(s.db).Create(ctx, c); err != nil {
		return nil, err
	}
	c.Projects = []*models.Project{}
	return c, nil
}

func (s *CatalogService) RenameClient(ctx context.Context, id, name string) (*models.Client, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	var renamed *models.Client
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		c := &models.Client{ID: id, Name: name, UpdatedAt: s.now()}
		if err := s.repomanager.Clients(tx).Update(ctx, c); err != nil {
			return err
		}
		got, err := s.loadClient(ctx, tx, id)
		if err != nil {
			return err
		}
		renamed = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

// DeleteClient removes a client together with its projects.
func (s *CatalogService) DeleteClient(ctx context.Context, id string) error {
	return s.repomanager.Clients(s.db).Delete(ctx, id)
}

// ListProjects returns projects with their client, optionally for one client.
func (s *CatalogService) ListProjects(ctx context.Context, clientID string) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx, clientID)
}

func (s *CatalogService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repomanager.Projects(s.db).Get(ctx, id)
}

// CreateProject adds a project under clientID. An unknown client yields
// common.ErrorNotFound.
func (s *CatalogService) CreateProject(ctx context.Context, name, clientID string) (*models.Project, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrClientIDRequired
	}

	var created *models.Project
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Clients(tx).Get(ctx, clientID); err != nil {
			return err
		}

		now := s.now()
		p := &models.Project{ID: newID(), Name: name, ClientID: clientID, CreatedAt: now, UpdatedAt: now}
		repo := s.repomanager.Projects(tx)
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		got, err := repo.Get(ctx, p.ID)
		if err != nil {
			return err
		}
		created = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) RenameProject(ctx context.Context, id, name string) (*models.Project, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	var renamed *models.Project
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Projects(tx)
		if err := repo.Update(ctx, &models.Project{ID: id, Name: name, UpdatedAt: s.now()}); err != nil {
			return err
		}
		got, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		renamed = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

// DeleteProject removes a project. Its entries and a timer pointing at it
// survive without a project.
func (s *CatalogService) DeleteProject(ctx context.Context, id string) error {
	return s.repomanager.Projects(s.db).Delete(ctx, id)
}
