package ticket

import (
	"context"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/ticket"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
)

type TicketServiceImpl struct {
	ticket.TicketRepository
}

func NewTicketService(ticketRepository ticket.TicketRepository) ticket.TicketService {
	return &TicketServiceImpl{TicketRepository: ticketRepository}
}

// Create implements ticket.TicketService.
func (s *TicketServiceImpl) Create(ctx context.Context, req ticket.CreateRequest) (ticket.Response, error) {
	if err := req.Validate(); err != nil {
		return ticket.Response{}, err
	}

	priority := ticket.Priority(req.Priority)
	if req.Priority == "" {
		priority = ticket.PriorityMedium
	}
	category := ticket.Category(req.Category)
	if req.Category == "" {
		category = ticket.CategoryOther
	}

	created, err := s.TicketRepository.Create(ctx, ticket.Ticket{
		UserID:      req.UserID,
		CompanyID:   req.CompanyID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		Category:    category,
		Status:      ticket.StatusOpen,
	})
	if err != nil {
		return ticket.Response{}, err
	}

	return ticket.ToResponse(created), nil
}

// List implements ticket.TicketService.
func (s *TicketServiceImpl) List(ctx context.Context, status *ticket.Status) ([]ticket.Response, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(actor, nil)
	tickets, err := s.TicketRepository.List(ctx, scope, status)
	if err != nil {
		return nil, err
	}

	responses := make([]ticket.Response, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, ticket.ToResponse(t))
	}
	return responses, nil
}

// Respond implements ticket.TicketService. The owner can always respond;
// anyone else needs a reviewing role in the ticket's company. The first
// response moves aberto to em_analise.
func (s *TicketServiceImpl) Respond(ctx context.Context, ticketID string, req ticket.RespondRequest) (ticket.Response, error) {
	if err := req.Validate(); err != nil {
		return ticket.Response{}, err
	}

	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return ticket.Response{}, err
	}

	existing, err := s.TicketRepository.GetByID(ctx, ticketID)
	if err != nil {
		return ticket.Response{}, err
	}

	if existing.UserID != actor.UserID {
		if err := policy.CanReview(actor, existing.CompanyID); err != nil {
			return ticket.Response{}, err
		}
	}

	if existing.Status == ticket.StatusClosed {
		return ticket.Response{}, ticket.ErrResponseOnClosed
	}

	updated, err := s.TicketRepository.AddResponse(ctx, ticketID, ticket.ResponseEntry{
		TicketID: ticketID,
		UserID:   actor.UserID,
		Message:  req.Message,
	})
	if err != nil {
		return ticket.Response{}, err
	}

	return ticket.ToResponse(updated), nil
}

// Resolve implements ticket.TicketService.
func (s *TicketServiceImpl) Resolve(ctx context.Context, ticketID string) (ticket.Response, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return ticket.Response{}, err
	}
	existing, err := s.TicketRepository.GetByID(ctx, ticketID)
	if err != nil {
		return ticket.Response{}, err
	}
	if err := policy.CanReview(actor, existing.CompanyID); err != nil {
		return ticket.Response{}, err
	}

	resolved, err := s.TicketRepository.Resolve(ctx, ticketID, actor.UserID)
	if err != nil {
		return ticket.Response{}, err
	}

	return ticket.ToResponse(resolved), nil
}
