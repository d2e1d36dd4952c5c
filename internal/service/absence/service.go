package absence

import (
	"context"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/absence"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
}

func NewAbsenceService(absenceRepository absence.AbsenceRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{AbsenceRepository: absenceRepository}
}

// Create implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Create(ctx context.Context, req absence.CreateRequest) (absence.Response, error) {
	if err := req.Validate(); err != nil {
		return absence.Response{}, err
	}

	// Validate already checked the format.
	date, _ := time.Parse("2006-01-02", req.Date)

	absenceType := absence.Type(req.Type)
	if req.Type == "" {
		absenceType = absence.TypeJustified
	}

	created, err := s.AbsenceRepository.Create(ctx, absence.Absence{
		UserID:     req.UserID,
		CompanyID:  req.CompanyID,
		Date:       date,
		Reason:     req.Reason,
		Type:       absenceType,
		Status:     absence.StatusPending,
		Attachment: req.Attachment,
	})
	if err != nil {
		return absence.Response{}, err
	}

	return absence.ToResponse(created), nil
}

// List implements absence.AbsenceService.
func (s *AbsenceServiceImpl) List(ctx context.Context, status *absence.Status) ([]absence.Response, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(actor, nil)
	absences, err := s.AbsenceRepository.List(ctx, scope, status)
	if err != nil {
		return nil, err
	}

	responses := make([]absence.Response, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, absence.ToResponse(a))
	}
	return responses, nil
}

// Review implements absence.AbsenceService. The reviewer must hold a
// reviewing role in the absence's company; cross-company review is
// rejected before the existence of the absence is revealed.
func (s *AbsenceServiceImpl) Review(ctx context.Context, id string, req absence.ReviewRequest) (absence.Response, error) {
	if err := req.Validate(); err != nil {
		return absence.Response{}, err
	}

	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return absence.Response{}, err
	}
	existing, err := s.AbsenceRepository.GetByID(ctx, id)
	if err != nil {
		return absence.Response{}, err
	}
	if err := policy.CanReview(actor, existing.CompanyID); err != nil {
		return absence.Response{}, err
	}

	reviewed, err := s.AbsenceRepository.Review(ctx, id, absence.Status(req.Status), actor.UserID, req.ReviewNotes)
	if err != nil {
		return absence.Response{}, err
	}

	return absence.ToResponse(reviewed), nil
}

// Stats implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Stats(ctx context.Context) (absence.StatsResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return absence.StatsResponse{}, err
	}

	scope := policy.ScopeFor(actor, nil)
	return s.AbsenceRepository.CountByStatus(ctx, scope)
}
