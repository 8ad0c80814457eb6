//go:build unit

package slot_test

import (
	"testing"
	"time"

	"lng-loading/internal/domain/slot"
	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	"lng-loading/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func runCases(t *testing.T, st *station.Station, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSlotBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain(st)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func buildStation(t *testing.T) *station.Station {
	t.Helper()
	st, err := builder.NewStationBuilder().BuildDomain()
	require.NoError(t, err)
	return st
}

func TestSlot(t *testing.T) {
	st := buildStation(t)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain(st)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, st.ID(), actual.StationID())
		assert.Equal(t, slot.StatusAvailable, actual.Status())
		assert.Equal(t, "08:00", actual.Start().String())
		assert.Equal(t, "10:00", actual.End().String())
	})

	t.Run("date is truncated to midnight UTC", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain(st)
		require.NoError(t, err)
		expected := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, actual.Date())
	})

	t.Run("window validation", func(t *testing.T) {
		runCases(t, st, []testCase{
			{
				name: "start equals end",
				mutate: func(b *builder.SlotBuilder) {
					b.StartTime = "10:00"
					b.EndTime = "10:00"
				},
				errIs: slot.ErrInvalidWindow,
			},
			{
				name: "start after end",
				mutate: func(b *builder.SlotBuilder) {
					b.StartTime = "12:00"
					b.EndTime = "10:00"
				},
				errIs: slot.ErrInvalidWindow,
			},
			{
				name: "before station opens",
				mutate: func(b *builder.SlotBuilder) {
					b.StartTime = "05:00"
					b.EndTime = "07:00"
				},
				errIs: slot.ErrOutsideOperatingHours,
			},
			{
				name: "after station closes",
				mutate: func(b *builder.SlotBuilder) {
					b.StartTime = "21:00"
					b.EndTime = "23:00"
				},
				errIs: slot.ErrOutsideOperatingHours,
			},
			{
				name: "exactly operating hours",
				mutate: func(b *builder.SlotBuilder) {
					b.StartTime = "06:00"
					b.EndTime = "22:00"
				},
			},
		})
	})

	t.Run("volume validation", func(t *testing.T) {
		runCases(t, st, []testCase{
			{
				name:   "zero max volume",
				mutate: func(b *builder.SlotBuilder) { b.MaxVolume = 0 },
				errIs:  slot.ErrNonPositiveVolume,
			},
			{
				name:   "negative max volume",
				mutate: func(b *builder.SlotBuilder) { b.MaxVolume = -5 },
				errIs:  slot.ErrNonPositiveVolume,
			},
		})
	})
}

func TestSlotOverlaps(t *testing.T) {
	st := buildStation(t)
	s, err := builder.NewSlotBuilder().BuildDomain(st)
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    string
		end      string
		expected bool
	}{
		{name: "same window", start: "08:00", end: "10:00", expected: true},
		{name: "partial overlap at start", start: "07:00", end: "09:00", expected: true},
		{name: "partial overlap at end", start: "09:00", end: "11:00", expected: true},
		{name: "contained window", start: "08:30", end: "09:30", expected: true},
		{name: "adjacent before", start: "06:00", end: "08:00", expected: false},
		{name: "adjacent after", start: "10:00", end: "12:00", expected: false},
		{name: "disjoint", start: "14:00", end: "16:00", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := mustParse(t, tc.start)
			end := mustParse(t, tc.end)
			assert.Equal(t, tc.expected, s.Overlaps(start, end))
		})
	}
}

func TestSlotCanAccommodate(t *testing.T) {
	st := buildStation(t)
	s, err := builder.NewSlotBuilder().BuildDomain(st)
	require.NoError(t, err)

	assert.True(t, s.CanAccommodate(40))
	assert.True(t, s.CanAccommodate(s.MaxVolume()))
	assert.False(t, s.CanAccommodate(s.MaxVolume()+0.1))
	assert.False(t, s.CanAccommodate(0))
	assert.False(t, s.CanAccommodate(-1))
}

func TestSlotReschedule(t *testing.T) {
	st := buildStation(t)

	t.Run("valid reschedule replaces the window", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain(st)
		require.NoError(t, err)

		newDate := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
		err = s.Reschedule(st, newDate, mustParse(t, "14:00"), mustParse(t, "16:00"), 80)
		require.NoError(t, err)

		assert.Equal(t, newDate, s.Date())
		assert.Equal(t, "14:00", s.Start().String())
		assert.Equal(t, "16:00", s.End().String())
		assert.Equal(t, float64(80), s.MaxVolume())
	})

	t.Run("invalid reschedule leaves slot untouched", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain(st)
		require.NoError(t, err)

		err = s.Reschedule(st, s.Date(), mustParse(t, "05:00"), mustParse(t, "07:00"), s.MaxVolume())
		require.ErrorIs(t, err, slot.ErrOutsideOperatingHours)
		assert.Equal(t, "08:00", s.Start().String())
	})
}

func TestSlotChangeStatus(t *testing.T) {
	cases := []struct {
		name    string
		current string
		next    slot.Status
		errIs   error
	}{
		{name: "available to cancelled", current: "available", next: slot.StatusCancelled},
		{name: "cancelled back to available", current: "cancelled", next: slot.StatusAvailable},
		{name: "same status is a no-op", current: "available", next: slot.StatusAvailable},
		{name: "reserved is locked", current: "reserved", next: slot.StatusCancelled, errIs: slot.ErrStatusLocked},
		{name: "completed is locked", current: "completed", next: slot.StatusAvailable, errIs: slot.ErrStatusLocked},
		{name: "cannot reserve manually", current: "available", next: slot.StatusReserved, errIs: slot.ErrStatusLocked},
		{name: "unknown status", current: "available", next: slot.Status("scrapped"), errIs: slot.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
				b.Status = tc.current
			}).BuildReconstructed()

			err := s.ChangeStatus(tc.next)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, slot.Status(tc.current), s.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.next, s.Status())
		})
	}
}

func mustParse(t *testing.T, s string) timeofday.TimeOfDay {
	t.Helper()
	v, err := timeofday.Parse(s)
	require.NoError(t, err)
	return v
}
