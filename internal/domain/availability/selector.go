package availability

import (
	"time"
)

// SelectionState names the phases of the two-click range selection.
type SelectionState int

const (
	// SelectionEmpty means no start date has been chosen yet.
	SelectionEmpty SelectionState = iota
	// SelectionPendingEnd means a start is set and the next click tries
	// to complete the range.
	SelectionPendingEnd
	// SelectionComplete means both endpoints are set. The next click
	// discards them and starts over, like SelectionEmpty.
	SelectionComplete
)

// Range is the validated start/end pair emitted when a selection
// completes.
type Range struct {
	Start time.Time
	End   time.Time
}

// Selector is the explicit state machine behind the booking calendar.
// It owns the blocked-date set for one workspace and advances one click
// at a time. Before the user interacts, today is pre-selected as a
// single-day range.
type Selector struct {
	intervals []ReservedInterval
	blocked   map[string]struct{}
	state     SelectionState
	start     time.Time
	end       time.Time
}

// NewSelector builds a selector over the already-filtered relevant
// intervals. Today starts out as the default single-day selection.
func NewSelector(intervals []ReservedInterval, today time.Time) *Selector {
	day := DayOf(today)
	return &Selector{
		intervals: intervals,
		blocked:   BlockedDates(intervals),
		state:     SelectionComplete,
		start:     day,
		end:       day,
	}
}

// Reload replaces the interval list after a refetch. The blocked set is
// recomputed from scratch and any pending selection is discarded.
func (s *Selector) Reload(intervals []ReservedInterval, today time.Time) {
	day := DayOf(today)
	s.intervals = intervals
	s.blocked = BlockedDates(intervals)
	s.state = SelectionComplete
	s.start = day
	s.end = day
}

// Click advances the machine by one calendar click. It returns the
// completed range and true exactly when the click transitions to
// SelectionComplete; every rejected click leaves the machine unchanged.
func (s *Selector) Click(date time.Time) (Range, bool) {
	day := DayOf(date)

	switch s.state {
	case SelectionPendingEnd:
		if s.isBlocked(day) {
			return Range{}, false
		}
		// Only forward selection from the start date is supported.
		if day.Before(s.start) {
			return Range{}, false
		}
		if !s.rangeFree(s.start, day) {
			return Range{}, false
		}
		s.end = day
		s.state = SelectionComplete
		return Range{Start: s.start, End: s.end}, true

	default: // SelectionEmpty and SelectionComplete both start over
		if s.isBlocked(day) {
			return Range{}, false
		}
		s.start = day
		s.end = time.Time{}
		s.state = SelectionPendingEnd
		return Range{}, false
	}
}

// IsBlocked reports whether the given day cannot be selected.
func (s *Selector) IsBlocked(date time.Time) bool {
	return s.isBlocked(DayOf(date))
}

// Blocked exposes the current blocked-date set keyed by DayKeyFormat.
func (s *Selector) Blocked() map[string]struct{} {
	return s.blocked
}

func (s *Selector) State() SelectionState { return s.state }
func (s *Selector) Start() time.Time      { return s.start }
func (s *Selector) End() time.Time        { return s.end }

func (s *Selector) isBlocked(day time.Time) bool {
	_, ok := s.blocked[day.Format(DayKeyFormat)]
	return ok
}

func (s *Selector) rangeFree(start, end time.Time) bool {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s.isBlocked(d) {
			return false
		}
	}
	return true
}
