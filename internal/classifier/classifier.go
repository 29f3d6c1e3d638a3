// Package classifier wraps the frozen authenticity model behind a thin
// scoring contract. The gateway never sees model internals, only a scalar
// confidence per image.
package classifier

import (
	"context"

	"github.com/verifeed/verifeed/internal/imaging"
)

// Classifier scores a normalized image tensor. The returned value is the
// model's confidence that the image is synthetic, in [0, 1]. Implementations
// must be deterministic: the same tensor always yields the same score.
type Classifier interface {
	Predict(ctx context.Context, t imaging.Tensor) (float64, error)
}
