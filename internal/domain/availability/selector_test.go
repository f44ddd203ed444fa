//go:build unit

package availability_test

import (
	"testing"
	"time"

	"workhive/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T, today time.Time, intervals ...availability.ReservedInterval) *availability.Selector {
	t.Helper()
	return availability.NewSelector(intervals, today)
}

func TestSelector_DefaultSelection(t *testing.T) {
	today := day(2024, 6, 5)
	s := newSelector(t, today)

	assert.Equal(t, availability.SelectionComplete, s.State())
	assert.Equal(t, today, s.Start())
	assert.Equal(t, today, s.End())
}

func TestSelector_TwoClickFlow(t *testing.T) {
	today := day(2024, 6, 5)
	reserved := availability.ReservedInterval{
		StartDate: day(2024, 6, 10),
		EndDate:   day(2024, 6, 12),
		Status:    availability.StatusInUse,
	}

	t.Run("overlapping range is rejected and stays pending", func(t *testing.T) {
		s := newSelector(t, today, reserved)

		_, done := s.Click(day(2024, 6, 9))
		require.False(t, done)
		require.Equal(t, availability.SelectionPendingEnd, s.State())

		_, done = s.Click(day(2024, 6, 11))
		assert.False(t, done)
		assert.Equal(t, availability.SelectionPendingEnd, s.State())
		assert.Equal(t, day(2024, 6, 9), s.Start())
	})

	t.Run("single-day range before the reservation succeeds", func(t *testing.T) {
		s := newSelector(t, today, reserved)

		_, done := s.Click(day(2024, 6, 9))
		require.False(t, done)

		r, done := s.Click(day(2024, 6, 9))
		require.True(t, done)
		assert.Equal(t, day(2024, 6, 9), r.Start)
		assert.Equal(t, day(2024, 6, 9), r.End)
		assert.Equal(t, availability.SelectionComplete, s.State())
	})

	t.Run("clicking a blocked start is ignored", func(t *testing.T) {
		s := newSelector(t, today, reserved)

		_, done := s.Click(day(2024, 6, 11))
		assert.False(t, done)
		assert.Equal(t, availability.SelectionComplete, s.State())
	})

	t.Run("backward end click is ignored", func(t *testing.T) {
		s := newSelector(t, today, reserved)

		_, _ = s.Click(day(2024, 6, 8))
		_, done := s.Click(day(2024, 6, 7))
		assert.False(t, done)
		assert.Equal(t, availability.SelectionPendingEnd, s.State())
	})

	t.Run("complete restarts like empty", func(t *testing.T) {
		s := newSelector(t, today, reserved)

		_, _ = s.Click(day(2024, 6, 7))
		r, done := s.Click(day(2024, 6, 8))
		require.True(t, done)
		require.Equal(t, day(2024, 6, 8), r.End)

		// Next click discards the completed range and begins a new one.
		_, done = s.Click(day(2024, 6, 14))
		assert.False(t, done)
		assert.Equal(t, availability.SelectionPendingEnd, s.State())
		assert.Equal(t, day(2024, 6, 14), s.Start())
	})
}

func TestSelector_Reload(t *testing.T) {
	today := day(2024, 6, 5)
	s := newSelector(t, today)

	_, _ = s.Click(day(2024, 6, 9)) // pending selection

	s.Reload([]availability.ReservedInterval{
		{StartDate: day(2024, 6, 9), EndDate: day(2024, 6, 9), Status: availability.StatusHandling},
	}, today)

	assert.Equal(t, availability.SelectionComplete, s.State())
	assert.Equal(t, today, s.Start())
	assert.True(t, s.IsBlocked(day(2024, 6, 9)))

	_, done := s.Click(day(2024, 6, 9))
	assert.False(t, done)
}
