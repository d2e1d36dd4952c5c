package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/ticket"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type ticketRepositoryImpl struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) ticket.TicketRepository {
	return &ticketRepositoryImpl{db: db}
}

const ticketColumns = `t.id, t.user_id, t.company_id, t.subject, t.description,
	   t.priority, t.category, t.status, t.resolved_by, t.resolved_at,
	   t.created_at, t.updated_at`

func scanTicket(row pgx.Row) (ticket.Ticket, error) {
	var found ticket.Ticket
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.Subject,
		&found.Description,
		&found.Priority,
		&found.Category,
		&found.Status,
		&found.ResolvedBy,
		&found.ResolvedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return ticket.Ticket{}, err
	}
	return found, nil
}

// Create implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) Create(ctx context.Context, newTicket ticket.Ticket) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tickets AS t (user_id, company_id, subject, description, priority, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ticketColumns

	created, err := scanTicket(q.QueryRow(ctx, query,
		newTicket.UserID,
		newTicket.CompanyID,
		newTicket.Subject,
		newTicket.Description,
		newTicket.Priority,
		newTicket.Category,
		newTicket.Status,
	))
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	return created, nil
}

// GetByID implements ticket.TicketRepository. The response thread is
// loaded alongside, ordered oldest first.
func (r *ticketRepositoryImpl) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ticketColumns + `, u.name AS user_name, res.name AS resolver_name
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN users res ON res.id = t.resolved_by
		WHERE t.id = $1
	`

	var found ticket.Ticket
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.Subject,
		&found.Description,
		&found.Priority,
		&found.Category,
		&found.Status,
		&found.ResolvedBy,
		&found.ResolvedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.UserName,
		&found.ResolverName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ticket.Ticket{}, ticket.ErrTicketNotFound
		}
		return ticket.Ticket{}, fmt.Errorf("failed to get ticket by id: %w", err)
	}

	responses, err := r.listResponses(ctx, id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	found.Responses = responses

	return found, nil
}

// List implements ticket.TicketRepository. Threads are not loaded for
// listings; GetByID returns the full conversation.
func (r *ticketRepositoryImpl) List(ctx context.Context, scope policy.Scope, status *ticket.Status) ([]ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ticketColumns + `, u.name AS user_name, res.name AS resolver_name
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN users res ON res.id = t.resolved_by
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if scope.CompanyID != nil {
		query += fmt.Sprintf(" AND t.company_id = $%d", argPos)
		args = append(args, *scope.CompanyID)
		argPos++
	}
	if scope.UserID != nil {
		query += fmt.Sprintf(" AND t.user_id = $%d", argPos)
		args = append(args, *scope.UserID)
		argPos++
	}
	if status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argPos)
		args = append(args, *status)
		argPos++
	}

	query += " ORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]ticket.Ticket, 0)
	for rows.Next() {
		var found ticket.Ticket
		err := rows.Scan(
			&found.ID,
			&found.UserID,
			&found.CompanyID,
			&found.Subject,
			&found.Description,
			&found.Priority,
			&found.Category,
			&found.Status,
			&found.ResolvedBy,
			&found.ResolvedAt,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.UserName,
			&found.ResolverName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// AddResponse implements ticket.TicketRepository. The insert and the
// status advance run in one transaction.
func (r *ticketRepositoryImpl) AddResponse(ctx context.Context, ticketID string, entry ticket.ResponseEntry) (ticket.Ticket, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO ticket_responses (ticket_id, user_id, message)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.Exec(ctx, insertQuery, ticketID, entry.UserID, entry.Message); err != nil {
			return fmt.Errorf("failed to add ticket response: %w", err)
		}

		advanceQuery := `
			UPDATE tickets
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status = $3
		`
		if _, err := tx.Exec(ctx, advanceQuery, ticket.StatusInReview, ticketID, ticket.StatusOpen); err != nil {
			return fmt.Errorf("failed to advance ticket status: %w", err)
		}
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	return r.GetByID(ctx, ticketID)
}

// Resolve implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) Resolve(ctx context.Context, id string, resolverID string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets
		SET status = $1, resolved_by = $2, resolved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status IN ($4, $5)
	`

	tag, err := q.Exec(ctx, query, ticket.StatusResolved, resolverID, id, ticket.StatusOpen, ticket.StatusInReview)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("failed to resolve ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return ticket.Ticket{}, getErr
		}
		return ticket.Ticket{}, ticket.ErrTicketAlreadyClosed
	}

	return r.GetByID(ctx, id)
}

// CloseResolvedBefore implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) CloseResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND resolved_at < $3
	`

	tag, err := q.Exec(ctx, query, ticket.StatusClosed, ticket.StatusResolved, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close resolved tickets: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ticketRepositoryImpl) listResponses(ctx context.Context, ticketID string) ([]ticket.ResponseEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tr.id, tr.ticket_id, tr.user_id, tr.message, tr.created_at, u.name AS user_name
		FROM ticket_responses tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.ticket_id = $1
		ORDER BY tr.created_at ASC
	`

	rows, err := q.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket responses: %w", err)
	}
	defer rows.Close()

	responses := make([]ticket.ResponseEntry, 0)
	for rows.Next() {
		var entry ticket.ResponseEntry
		if err := rows.Scan(&entry.ID, &entry.TicketID, &entry.UserID, &entry.Message, &entry.CreatedAt, &entry.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan ticket response: %w", err)
		}
		responses = append(responses, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
