package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/adjustment"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `adj.id, adj.user_id, adj.company_id, adj.record_type,
	   adj.date, adj.start_time, adj.end_time, adj.description, adj.justification, adj.status,
	   adj.attachment_original_name, adj.attachment_mime_type, adj.attachment_size, adj.attachment_storage_path,
	   adj.reviewed_by, adj.reviewed_at, adj.created_at, adj.updated_at`

func scanAdjustment(row pgx.Row) (adjustment.Adjustment, error) {
	var found adjustment.Adjustment
	var attName, attMime *string
	var attSize *int64
	var attPath *string
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.RecordType,
		&found.Date,
		&found.Start,
		&found.End,
		&found.Description,
		&found.Justification,
		&found.Status,
		&attName,
		&attMime,
		&attSize,
		&attPath,
		&found.ReviewedBy,
		&found.ReviewedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return adjustment.Adjustment{}, err
	}
	if attName != nil && attMime != nil && attSize != nil {
		found.Attachment = &adjustment.AttachmentMeta{
			OriginalName: *attName,
			MimeType:     *attMime,
			Size:         *attSize,
			StoragePath:  attPath,
		}
	}
	return found, nil
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, newAdjustment adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	var attName, attMime, attPath *string
	var attSize *int64
	if newAdjustment.Attachment != nil {
		attName = &newAdjustment.Attachment.OriginalName
		attMime = &newAdjustment.Attachment.MimeType
		attSize = &newAdjustment.Attachment.Size
		attPath = newAdjustment.Attachment.StoragePath
	}

	query := `
		INSERT INTO adjustments AS adj (
			user_id, company_id, record_type, date, start_time, end_time,
			description, justification, status,
			attachment_original_name, attachment_mime_type, attachment_size, attachment_storage_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + adjustmentColumns

	created, err := scanAdjustment(q.QueryRow(ctx, query,
		newAdjustment.UserID,
		newAdjustment.CompanyID,
		newAdjustment.RecordType,
		newAdjustment.Date,
		newAdjustment.Start,
		newAdjustment.End,
		newAdjustment.Description,
		newAdjustment.Justification,
		newAdjustment.Status,
		attName,
		attMime,
		attSize,
		attPath,
	))
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return created, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustments adj WHERE adj.id = $1`

	found, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to get adjustment by id: %w", err)
	}

	return found, nil
}

// List implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) List(ctx context.Context, scope policy.Scope, status *adjustment.Status) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `, u.name AS user_name
		FROM adjustments adj
		JOIN users u ON u.id = adj.user_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if scope.CompanyID != nil {
		query += fmt.Sprintf(" AND adj.company_id = $%d", argPos)
		args = append(args, *scope.CompanyID)
		argPos++
	}
	if scope.UserID != nil {
		query += fmt.Sprintf(" AND adj.user_id = $%d", argPos)
		args = append(args, *scope.UserID)
		argPos++
	}
	if status != nil {
		query += fmt.Sprintf(" AND adj.status = $%d", argPos)
		args = append(args, *status)
		argPos++
	}

	query += " ORDER BY adj.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	adjustments := make([]adjustment.Adjustment, 0)
	for rows.Next() {
		var found adjustment.Adjustment
		var attName, attMime *string
		var attSize *int64
		var attPath *string
		err := rows.Scan(
			&found.ID,
			&found.UserID,
			&found.CompanyID,
			&found.RecordType,
			&found.Date,
			&found.Start,
			&found.End,
			&found.Description,
			&found.Justification,
			&found.Status,
			&attName,
			&attMime,
			&attSize,
			&attPath,
			&found.ReviewedBy,
			&found.ReviewedAt,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		if attName != nil && attMime != nil && attSize != nil {
			found.Attachment = &adjustment.AttachmentMeta{
				OriginalName: *attName,
				MimeType:     *attMime,
				Size:         *attSize,
				StoragePath:  attPath,
			}
		}
		adjustments = append(adjustments, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}

// Review implements adjustment.AdjustmentRepository. Only pending rows
// transition.
func (r *adjustmentRepositoryImpl) Review(ctx context.Context, id string, status adjustment.Status, reviewerID string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustments AS adj
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE adj.id = $3 AND adj.status = $4
		RETURNING ` + adjustmentColumns

	updated, err := scanAdjustment(q.QueryRow(ctx, query, status, reviewerID, id, adjustment.StatusPending))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return adjustment.Adjustment{}, getErr
			}
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentAlreadyProcessed
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to review adjustment: %w", err)
	}

	return updated, nil
}
