// Package clients provides persistence for billing clients.
package clients

import (
	"context"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

// Repository stores clients. Missing rows surface as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	// List returns all clients, newest first.
	List(ctx context.Context) ([]*models.Client, error)
	// Update persists the name and updated_at of an existing client.
	Update(ctx context.Context, c *models.Client) error
	// Delete removes the client; its projects go with it.
	Delete(ctx context.Context, id string) error
}
