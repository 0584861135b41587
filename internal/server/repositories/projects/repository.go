// Package projects provides persistence for client projects.
package projects

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

// Repository stores projects. Reads join the owning client.
type Repository interface {
	Create(ctx context.Context, p *models.Project) error
	Get(ctx context.Context, id string) (*models.Project, error)
	// List returns projects newest first; a non-empty clientID restricts
	// the result to that client.
	List(ctx context.Context, clientID string) ([]*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	// Delete removes the project. Entries and the active timer keep their
	// rows with project_id cleared.
	Delete(ctx context.Context, id string) error
}
