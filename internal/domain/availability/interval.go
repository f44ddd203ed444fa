// Package availability computes which calendar days of a workspace are
// closed to new bookings and drives the two-click date-range selection.
// The blocked set is always rebuilt wholesale from the authoritative
// reservation list; nothing here is patched incrementally.
package availability

import (
	"time"
)

type Status string

const (
	// StatusHandling marks a reservation awaiting confirmation; it still
	// blocks its dates.
	StatusHandling Status = "Handling"
	// StatusInUse marks a confirmed, active reservation.
	StatusInUse Status = "InUse"
)

// DayKeyFormat keys the blocked-date set.
const DayKeyFormat = "2006-01-02"

// ReservedInterval is one existing reservation, read-only input.
type ReservedInterval struct {
	StartDate time.Time
	EndDate   time.Time
	Status    Status
}

// RelevantIntervals filters to the reservations that can still block a
// new booking: Handling or InUse, starting on or after today. A failed
// or empty fetch upstream yields an empty slice here, which blocks
// nothing; callers re-verify server-side at checkout.
func RelevantIntervals(all []ReservedInterval, today time.Time) []ReservedInterval {
	day := DayOf(today)

	relevant := make([]ReservedInterval, 0, len(all))
	for _, iv := range all {
		if iv.Status != StatusHandling && iv.Status != StatusInUse {
			continue
		}
		if DayOf(iv.StartDate).Before(day) {
			continue
		}
		relevant = append(relevant, iv)
	}
	return relevant
}

// BlockedDates marks every calendar day of every interval, inclusive of
// both endpoints.
func BlockedDates(intervals []ReservedInterval) map[string]struct{} {
	blocked := make(map[string]struct{})
	for _, iv := range intervals {
		start := DayOf(iv.StartDate)
		end := DayOf(iv.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			blocked[d.Format(DayKeyFormat)] = struct{}{}
		}
	}
	return blocked
}

// IsDateBlocked reports whether date falls inside any interval,
// endpoints included.
func IsDateBlocked(date time.Time, intervals []ReservedInterval) bool {
	day := DayOf(date)
	for _, iv := range intervals {
		if !day.Before(DayOf(iv.StartDate)) && !day.After(DayOf(iv.EndDate)) {
			return true
		}
	}
	return false
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
