package absence

import (
	"context"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
)

// AbsenceRepository defines data access methods for absences. Every
// listing takes the policy scope so tenant isolation is applied in SQL.
type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	GetByID(ctx context.Context, id string) (Absence, error)
	List(ctx context.Context, scope policy.Scope, status *Status) ([]Absence, error)

	// Review transitions a pending absence and stamps the reviewer.
	Review(ctx context.Context, id string, status Status, reviewerID string, notes *string) (Absence, error)

	CountByStatus(ctx context.Context, scope policy.Scope) (StatsResponse, error)
}
