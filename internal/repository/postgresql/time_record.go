package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

const timeRecordColumns = `id, user_id, company_id, type, timestamp,
	   latitude, longitude, address,
	   device_id, device_name, platform, app_version,
	   face_status, face_confidence, face_image_url,
	   geo_status, geo_distance,
	   device_auth_status,
	   overall_status, is_synced, metadata, created_at`

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var rec timerecord.TimeRecord
	var metadata []byte
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.CompanyID,
		&rec.Type,
		&rec.Timestamp,
		&rec.Location.Latitude,
		&rec.Location.Longitude,
		&rec.Location.Address,
		&rec.DeviceInfo.DeviceID,
		&rec.DeviceInfo.DeviceName,
		&rec.DeviceInfo.Platform,
		&rec.DeviceInfo.AppVersion,
		&rec.Validation.FaceRecognition.Status,
		&rec.Validation.FaceRecognition.Confidence,
		&rec.Validation.FaceRecognition.ImageURL,
		&rec.Validation.Geolocation.Status,
		&rec.Validation.Geolocation.DistanceFromWorkplace,
		&rec.Validation.DeviceAuth.Status,
		&rec.OverallStatus,
		&rec.IsSynced,
		&metadata,
		&rec.CreatedAt,
	)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
			return timerecord.TimeRecord{}, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}
	return rec, nil
}

// Create implements timerecord.TimeRecordRepository. Records are
// append-only: there is no update path besides the sync flag.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	metadata, err := json.Marshal(record.Metadata)
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to encode metadata: %w", err)
	}

	query := `
		INSERT INTO time_records (
			user_id, company_id, type, timestamp,
			latitude, longitude, address,
			device_id, device_name, platform, app_version,
			face_status, face_confidence, face_image_url,
			geo_status, geo_distance,
			device_auth_status,
			overall_status, is_synced, metadata
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + timeRecordColumns

	created, err := scanTimeRecord(q.QueryRow(ctx, query,
		record.UserID,
		record.CompanyID,
		record.Type,
		record.Timestamp,
		record.Location.Latitude,
		record.Location.Longitude,
		record.Location.Address,
		record.DeviceInfo.DeviceID,
		record.DeviceInfo.DeviceName,
		record.DeviceInfo.Platform,
		record.DeviceInfo.AppVersion,
		record.Validation.FaceRecognition.Status,
		record.Validation.FaceRecognition.Confidence,
		record.Validation.FaceRecognition.ImageURL,
		record.Validation.Geolocation.Status,
		record.Validation.Geolocation.DistanceFromWorkplace,
		record.Validation.DeviceAuth.Status,
		record.OverallStatus,
		record.IsSynced,
		metadata,
	))
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return created, nil
}

// ListByUser implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListByUser(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE user_id = $1`
	args := []interface{}{filter.UserID}
	argPos := 2

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND timestamp >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND timestamp <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM time_records`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + timeRecordColumns + ` FROM time_records` + where +
		fmt.Sprintf(" ORDER BY timestamp DESC, created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	records, err := collectTimeRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListForWindow implements timerecord.TimeRecordRepository. Ascending
// order with created_at as tiebreak is what the state reducer expects.
func (r *timeRecordRepositoryImpl) ListForWindow(ctx context.Context, userID string, start, end time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp <= $3
		ORDER BY timestamp ASC, created_at ASC`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records for window: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// LatestTypeByUser implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) LatestTypeByUser(ctx context.Context, companyID *string) (map[string]timerecord.RecordType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (user_id) user_id, type
		FROM time_records
	`
	args := []interface{}{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY user_id, timestamp DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest record types: %w", err)
	}
	defer rows.Close()

	result := make(map[string]timerecord.RecordType)
	for rows.Next() {
		var userID string
		var recordType timerecord.RecordType
		if err := rows.Scan(&userID, &recordType); err != nil {
			return nil, fmt.Errorf("failed to scan latest record type: %w", err)
		}
		result[userID] = recordType
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// MarkSynced implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) MarkSynced(ctx context.Context, id string, synced bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE time_records SET is_synced = $1 WHERE id = $2`, synced, id)
	if err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}

	return nil
}

// CountSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) CountSince(ctx context.Context, companyID *string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM time_records WHERE timestamp >= $1`
	args := []interface{}{since}
	if companyID != nil {
		query += ` AND company_id = $2`
		args = append(args, *companyID)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count time records: %w", err)
	}
	return count, nil
}

// DistinctUsersSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) DistinctUsersSince(ctx context.Context, companyID *string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(DISTINCT user_id) FROM time_records WHERE timestamp >= $1`
	args := []interface{}{since}
	if companyID != nil {
		query += ` AND company_id = $2`
		args = append(args, *companyID)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct users: %w", err)
	}
	return count, nil
}

// CountByDaySince implements timerecord.TimeRecordRepository. Keys are
// dates formatted YYYY-MM-DD in UTC.
func (r *timeRecordRepositoryImpl) CountByDaySince(ctx context.Context, companyID *string, since time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(timestamp AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM time_records
		WHERE timestamp >= $1
	`
	args := []interface{}{since}
	if companyID != nil {
		query += ` AND company_id = $2`
		args = append(args, *companyID)
	}
	query += ` GROUP BY day ORDER BY day ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count records by day: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		result[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func collectTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	records := make([]timerecord.TimeRecord, 0)
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
