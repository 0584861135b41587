// Package timers persists the single active timer. The table holds at most
// one row, so no operation takes a key.
package timers

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no timer is running.
	Get(ctx context.Context) (*models.ActiveTimer, error)
	// Put stores t, replacing any existing timer.
	Put(ctx context.Context, t *models.ActiveTimer) error
	// Delete returns common.ErrorNotFound when there was nothing to delete.
	Delete(ctx context.Context) error
}
