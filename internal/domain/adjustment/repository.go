package adjustment

import (
	"context"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
)

// AdjustmentRepository defines data access methods for adjustment requests.
type AdjustmentRepository interface {
	Create(ctx context.Context, a Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id string) (Adjustment, error)
	List(ctx context.Context, scope policy.Scope, status *Status) ([]Adjustment, error)
	Review(ctx context.Context, id string, status Status, reviewerID string) (Adjustment, error)
}
