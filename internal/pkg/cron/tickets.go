package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/ticket"
)

type TicketJobs struct {
	ticketRepo ticket.TicketRepository
	cfg        config.TicketConfig
}

func NewTicketJobs(ticketRepo ticket.TicketRepository, cfg config.TicketConfig) *TicketJobs {
	return &TicketJobs{
		ticketRepo: ticketRepo,
		cfg:        cfg,
	}
}

func (j *TicketJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_resolved_tickets", j.cfg.AutoCloseInterval, j.AutoCloseResolvedTickets)
}

// AutoCloseResolvedTickets closes tickets that have stayed resolvido past
// the configured grace period without further responses.
func (j *TicketJobs) AutoCloseResolvedTickets(ctx context.Context) error {
	cutoff := time.Now().Add(-j.cfg.AutoCloseAfter)

	closed, err := j.ticketRepo.CloseResolvedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to close resolved tickets: %w", err)
	}

	if closed > 0 {
		slog.Info("Cron: Auto-closed resolved tickets", "count", closed, "cutoff", cutoff)
	}
	return nil
}
