package queries

import (
	"context"
	"sort"

	"workhive/internal/domain/availability"
	"workhive/internal/pkg/clock"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	BlockedDates(ctx context.Context, workspaceID uuid.UUID) (*BlockedDatesView, error)
}

// IntervalReadStore fetches the authoritative reservation intervals for
// one workspace.
type IntervalReadStore interface {
	ActiveIntervals(ctx context.Context, workspaceID uuid.UUID) ([]availability.ReservedInterval, error)
}

type availabilityQueriesImpl struct {
	intervals IntervalReadStore
	clock     clock.Clock
}

func NewAvailabilityQueries(intervals IntervalReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{intervals: intervals, clock: clock}
}

func (q *availabilityQueriesImpl) BlockedDates(ctx context.Context, workspaceID uuid.UUID) (*BlockedDatesView, error) {
	all, err := q.intervals.ActiveIntervals(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	relevant := availability.RelevantIntervals(all, q.clock.Now())
	blocked := availability.BlockedDates(relevant)

	dates := make([]string, 0, len(blocked))
	for d := range blocked {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return &BlockedDatesView{WorkspaceID: workspaceID, Dates: dates}, nil
}
