// Package posts stores published content records.
package posts

import (
	"context"

	"github.com/verifeed/verifeed/internal/server/models"
)

type Repository interface {
	// Put upserts a post keyed by its identifier.
	Put(ctx context.Context, post *models.Post) error

	// List returns every post.
	List(ctx context.Context) ([]*models.Post, error)

	// ListByIdentity returns the posts owned by the given identity.
	ListByIdentity(ctx context.Context, identityID string) ([]*models.Post, error)
}
