package adjustment

import "context"

// AdjustmentService defines business logic for time record corrections.
type AdjustmentService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context, status *Status) ([]Response, error)
	Review(ctx context.Context, id string, req ReviewRequest) (Response, error)

	// GenerateJustification delegates to the text-generation collaborator
	// and falls back to a deterministic template on failure.
	GenerateJustification(ctx context.Context, req GenerateJustificationRequest) (GenerateJustificationResponse, error)
}
