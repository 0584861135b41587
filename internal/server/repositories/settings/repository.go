// Package settings persists the single settings row.
package settings

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when settings were never stored.
	Get(ctx context.Context) (*models.Settings, error)
	// Put creates or replaces the settings row.
	Put(ctx context.Context, s *models.Settings) error
}
