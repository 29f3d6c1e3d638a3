// Package identities stores registered accounts.
package identities

import (
	"context"

	"github.com/verifeed/verifeed/internal/server/models"
)

type Repository interface {
	// Put upserts an identity keyed by its identifier.
	Put(ctx context.Context, identity *models.Identity) error

	// List returns every registered identity.
	List(ctx context.Context) ([]*models.Identity, error)

	// FindByUsername returns identities whose account name matches, in scan
	// order. Account names are unique by convention only, so more than one
	// row can come back.
	FindByUsername(ctx context.Context, username string) ([]*models.Identity, error)
}
