package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for clock events. Records are
// append-only; the only mutable field is the sync flag.
type TimeRecordRepository interface {
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// ListByUser returns records for one employee sorted by timestamp
	// descending (newest first) with total count for pagination.
	ListByUser(ctx context.Context, filter ListFilter) ([]TimeRecord, int64, error)

	// ListForWindow returns records for one employee sorted by timestamp
	// ascending, created_at as tiebreak, ready for the reducer.
	ListForWindow(ctx context.Context, userID string, start, end time.Time) ([]TimeRecord, error)

	// LatestTypeByUser returns, per user of the scoped company set, the
	// type of that user's single latest record.
	LatestTypeByUser(ctx context.Context, companyID *string) (map[string]RecordType, error)

	MarkSynced(ctx context.Context, id string, synced bool) error

	CountSince(ctx context.Context, companyID *string, since time.Time) (int64, error)
	DistinctUsersSince(ctx context.Context, companyID *string, since time.Time) (int64, error)
	CountByDaySince(ctx context.Context, companyID *string, since time.Time) (map[string]int64, error)
}
