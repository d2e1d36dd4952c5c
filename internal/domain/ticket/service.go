package ticket

import "context"

// TicketService defines business logic for support tickets.
type TicketService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context, status *Status) ([]Response, error)

	// Respond appends a message; the author must own the ticket or hold a
	// reviewer role within the ticket's company.
	Respond(ctx context.Context, ticketID string, req RespondRequest) (Response, error)

	// Resolve marks the ticket resolvido (manager/hr/admin, company-scoped).
	Resolve(ctx context.Context, ticketID string) (Response, error)
}
