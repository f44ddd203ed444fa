package readstore

import (
	"context"

	"workhive/internal/domain/availability"
	"workhive/internal/infra"
	"workhive/internal/infra/db"
	"workhive/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const activeIntervalsQuery = `
SELECT start_date, end_date, status
FROM reservations
WHERE workspace_id = $1
  AND status IN ('Handling', 'InUse')
ORDER BY start_date`

// ReservationReadStore serves the availability calendar and the overlap
// checks at booking time from the same query.
type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) ActiveIntervals(ctx context.Context, workspaceID uuid.UUID) ([]availability.ReservedInterval, error) {
	rows, err := r.db.Query(ctx, activeIntervalsQuery, workspaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var intervals []availability.ReservedInterval
	for rows.Next() {
		var (
			start, end pgtype.Timestamptz
			status     string
		)
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		intervals = append(intervals, availability.ReservedInterval{
			StartDate: pgconv.TimeFromPgtype(start),
			EndDate:   pgconv.TimeFromPgtype(end),
			Status:    availability.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return intervals, nil
}
