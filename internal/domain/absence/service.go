package absence

import "context"

// AbsenceService defines business logic for absence requests.
type AbsenceService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context, status *Status) ([]Response, error)

	// Review approves or rejects a pending absence (manager/hr/admin,
	// company-scoped).
	Review(ctx context.Context, id string, req ReviewRequest) (Response, error)

	Stats(ctx context.Context) (StatsResponse, error)
}
