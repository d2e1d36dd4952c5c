package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/absence"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `a.id, a.user_id, a.company_id, a.date, a.reason, a.type, a.status,
	   a.attachment_url, a.attachment_filename, a.attachment_uploaded_at,
	   a.reviewed_by, a.reviewed_at, a.review_notes, a.created_at, a.updated_at`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var found absence.Absence
	var attURL, attFilename *string
	var attUploadedAt *time.Time
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.CompanyID,
		&found.Date,
		&found.Reason,
		&found.Type,
		&found.Status,
		&attURL,
		&attFilename,
		&attUploadedAt,
		&found.ReviewedBy,
		&found.ReviewedAt,
		&found.ReviewNotes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return absence.Absence{}, err
	}
	if attURL != nil && attFilename != nil && attUploadedAt != nil {
		found.Attachment = &absence.Attachment{
			URL:        *attURL,
			Filename:   *attFilename,
			UploadedAt: *attUploadedAt,
		}
	}
	return found, nil
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, newAbsence absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	var attURL, attFilename *string
	var attUploadedAt interface{}
	if newAbsence.Attachment != nil {
		attURL = &newAbsence.Attachment.URL
		attFilename = &newAbsence.Attachment.Filename
		attUploadedAt = newAbsence.Attachment.UploadedAt
	}

	query := `
		INSERT INTO absences AS a (
			user_id, company_id, date, reason, type, status,
			attachment_url, attachment_filename, attachment_uploaded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + absenceColumns

	created, err := scanAbsence(q.QueryRow(ctx, query,
		newAbsence.UserID,
		newAbsence.CompanyID,
		newAbsence.Date,
		newAbsence.Reason,
		newAbsence.Type,
		newAbsence.Status,
		attURL,
		attFilename,
		attUploadedAt,
	))
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return created, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM absences a WHERE a.id = $1`

	found, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, fmt.Errorf("failed to get absence by id: %w", err)
	}

	return found, nil
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, scope policy.Scope, status *absence.Status) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `,
			   u.name AS user_name, rev.name AS reviewer_name
		FROM absences a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN users rev ON rev.id = a.reviewed_by
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if scope.CompanyID != nil {
		query += fmt.Sprintf(" AND a.company_id = $%d", argPos)
		args = append(args, *scope.CompanyID)
		argPos++
	}
	if scope.UserID != nil {
		query += fmt.Sprintf(" AND a.user_id = $%d", argPos)
		args = append(args, *scope.UserID)
		argPos++
	}
	if status != nil {
		query += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *status)
		argPos++
	}

	query += " ORDER BY a.date DESC, a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	absences := make([]absence.Absence, 0)
	for rows.Next() {
		var found absence.Absence
		var attURL, attFilename *string
		var attUploadedAt *time.Time
		err := rows.Scan(
			&found.ID,
			&found.UserID,
			&found.CompanyID,
			&found.Date,
			&found.Reason,
			&found.Type,
			&found.Status,
			&attURL,
			&attFilename,
			&attUploadedAt,
			&found.ReviewedBy,
			&found.ReviewedAt,
			&found.ReviewNotes,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.UserName,
			&found.ReviewerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		if attURL != nil && attFilename != nil && attUploadedAt != nil {
			found.Attachment = &absence.Attachment{
				URL:        *attURL,
				Filename:   *attFilename,
				UploadedAt: *attUploadedAt,
			}
		}
		absences = append(absences, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}

// Review implements absence.AbsenceRepository. Only pending rows can
// transition; reviewing a settled request affects zero rows.
func (r *absenceRepositoryImpl) Review(ctx context.Context, id string, status absence.Status, reviewerID string, notes *string) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences a
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), review_notes = $3, updated_at = NOW()
		WHERE a.id = $4 AND a.status = $5
		RETURNING ` + absenceColumns

	updated, err := scanAbsence(q.QueryRow(ctx, query, status, reviewerID, notes, id, absence.StatusPending))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or already reviewed; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return absence.Absence{}, getErr
			}
			return absence.Absence{}, absence.ErrAbsenceAlreadyProcessed
		}
		return absence.Absence{}, fmt.Errorf("failed to review absence: %w", err)
	}

	return updated, nil
}

// CountByStatus implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) CountByStatus(ctx context.Context, scope policy.Scope) (absence.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pendente'),
			COUNT(*) FILTER (WHERE status = 'aprovado'),
			COUNT(*) FILTER (WHERE status = 'rejeitado')
		FROM absences
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if scope.CompanyID != nil {
		query += fmt.Sprintf(" AND company_id = $%d", argPos)
		args = append(args, *scope.CompanyID)
		argPos++
	}
	if scope.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, *scope.UserID)
		argPos++
	}

	var stats absence.StatsResponse
	if err := q.QueryRow(ctx, query, args...).Scan(&stats.Pending, &stats.Approved, &stats.Rejected); err != nil {
		return absence.StatsResponse{}, fmt.Errorf("failed to count absences: %w", err)
	}

	return stats, nil
}
