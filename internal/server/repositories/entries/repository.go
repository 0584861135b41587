// Package entries provides persistence for completed time entries.
package entries

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

// Repository stores time entries. Reads join the project and its client.
type Repository interface {
	Create(ctx context.Context, e *models.TimeEntry) error
	Get(ctx context.Context, id string) (*models.TimeEntry, error)
	// List returns entries matching f, newest first.
	List(ctx context.Context, f models.EntryFilter) ([]*models.TimeEntry, error)
	// Update writes every mutable column of an existing entry.
	Update(ctx context.Context, e *models.TimeEntry) error
	Delete(ctx context.Context, id string) error
}
