// Package quarantine stores rejected registration attempts for audit.
package quarantine

import (
	"context"

	"github.com/verifeed/verifeed/internal/server/models"
)

type Repository interface {
	// Put records a rejected registration attempt.
	Put(ctx context.Context, attempt *models.QuarantinedAttempt) error

	// List returns every recorded attempt, for audit tooling.
	List(ctx context.Context) ([]*models.QuarantinedAttempt, error)
}
