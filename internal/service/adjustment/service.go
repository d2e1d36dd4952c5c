package adjustment

import (
	"context"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/adjustment"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/textgen"
)

type AdjustmentServiceImpl struct {
	adjustment.AdjustmentRepository
	generator textgen.Generator
}

func NewAdjustmentService(adjustmentRepository adjustment.AdjustmentRepository, generator textgen.Generator) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		AdjustmentRepository: adjustmentRepository,
		generator:            generator,
	}
}

// Create implements adjustment.AdjustmentService. When no justification
// was written by hand the description is turned into one.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateRequest) (adjustment.Response, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Response{}, err
	}

	var justification *string
	if req.Description != nil && *req.Description != "" {
		date := time.Now().UTC()
		if req.Date != nil {
			if parsed, err := time.Parse("2006-01-02", *req.Date); err == nil {
				date = parsed
			}
		}
		text, _ := s.generator.GenerateJustification(ctx, *req.Description, req.RecordType, date)
		justification = &text
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment.Adjustment{
		UserID:        req.UserID,
		CompanyID:     req.CompanyID,
		RecordType:    req.RecordType,
		Date:          req.Date,
		Start:         req.Start,
		End:           req.End,
		Description:   req.Description,
		Justification: justification,
		Status:        adjustment.StatusPending,
		Attachment:    req.Attachment,
	})
	if err != nil {
		return adjustment.Response{}, err
	}

	return adjustment.ToResponse(created), nil
}

// List implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) List(ctx context.Context, status *adjustment.Status) ([]adjustment.Response, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(actor, nil)
	adjustments, err := s.AdjustmentRepository.List(ctx, scope, status)
	if err != nil {
		return nil, err
	}

	responses := make([]adjustment.Response, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, adjustment.ToResponse(a))
	}
	return responses, nil
}

// Review implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Review(ctx context.Context, id string, req adjustment.ReviewRequest) (adjustment.Response, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Response{}, err
	}

	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return adjustment.Response{}, err
	}
	existing, err := s.AdjustmentRepository.GetByID(ctx, id)
	if err != nil {
		return adjustment.Response{}, err
	}
	if err := policy.CanReview(actor, existing.CompanyID); err != nil {
		return adjustment.Response{}, err
	}

	reviewed, err := s.AdjustmentRepository.Review(ctx, id, adjustment.Status(req.Status), actor.UserID)
	if err != nil {
		return adjustment.Response{}, err
	}

	return adjustment.ToResponse(reviewed), nil
}

// GenerateJustification implements adjustment.AdjustmentService. The
// fallback template is returned on collaborator failure so the endpoint
// never errors because of the external service.
func (s *AdjustmentServiceImpl) GenerateJustification(ctx context.Context, req adjustment.GenerateJustificationRequest) (adjustment.GenerateJustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.GenerateJustificationResponse{}, err
	}

	date := time.Now().UTC()
	if req.Date != nil {
		if parsed, err := time.Parse("2006-01-02", *req.Date); err == nil {
			date = parsed
		}
	}

	text, _ := s.generator.GenerateJustification(ctx, req.UserInput, req.RecordType, date)

	return adjustment.GenerateJustificationResponse{
		Justification: text,
		OriginalInput: req.UserInput,
	}, nil
}
