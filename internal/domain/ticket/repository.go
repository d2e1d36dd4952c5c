package ticket

import (
	"context"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
)

// TicketRepository defines data access methods for tickets and their
// ordered response threads.
type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string) (Ticket, error)
	List(ctx context.Context, scope policy.Scope, status *Status) ([]Ticket, error)

	// AddResponse appends to the thread and advances aberto -> em_analise.
	AddResponse(ctx context.Context, ticketID string, entry ResponseEntry) (Ticket, error)

	Resolve(ctx context.Context, id string, resolverID string) (Ticket, error)

	// CloseResolvedBefore closes resolved tickets older than the cutoff.
	// Used by the housekeeping job; returns the number closed.
	CloseResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
