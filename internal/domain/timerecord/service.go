package timerecord

import "context"

// TimeRecordService defines business logic for clock events.
type TimeRecordService interface {
	// Create validates a submitted clock event (face, geolocation, device
	// authorization), derives its overall status and persists it.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	// List returns records for the requested employee. Non-privileged
	// callers are restricted to their own records by the policy evaluator.
	List(ctx context.Context, requestedUserID string, filter ListFilter) (ListResponse, error)
}
