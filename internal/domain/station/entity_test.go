//go:build unit

package station_test

import (
	"strings"
	"testing"

	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	"lng-loading/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.StationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewStationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestStation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewStationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Zeebrugge Terminal", actual.Name())
		assert.Equal(t, float64(150), actual.CapacityPerHour())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "06:00", actual.OperatingHours().Start().String())
		assert.Equal(t, "22:00", actual.OperatingHours().End().String())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.StationBuilder) { b.Name = "" },
				errIs:  station.ErrEmptyStationName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.StationBuilder) { b.Name = "   " },
				errIs:  station.ErrEmptyStationName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.StationBuilder) { b.Name = strings.Repeat("a", station.MaxStationNameLength) },
			},
			{
				name:   "name too long",
				mutate: func(b *builder.StationBuilder) { b.Name = strings.Repeat("a", station.MaxStationNameLength+1) },
				errIs:  station.ErrStationNameTooLong,
			},
		})
	})

	t.Run("location validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty location",
				mutate: func(b *builder.StationBuilder) { b.Location = "" },
				errIs:  station.ErrEmptyLocation,
			},
			{
				name:   "location too long",
				mutate: func(b *builder.StationBuilder) { b.Location = strings.Repeat("a", station.MaxLocationLength+1) },
				errIs:  station.ErrLocationTooLong,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero capacity",
				mutate: func(b *builder.StationBuilder) { b.CapacityPerHour = 0 },
				errIs:  station.ErrNonPositiveCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.StationBuilder) { b.CapacityPerHour = -10 },
				errIs:  station.ErrNonPositiveCapacity,
			},
		})
	})

	t.Run("operating hours validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "start equals end",
				mutate: func(b *builder.StationBuilder) {
					b.OperatingHoursStart = "08:00"
					b.OperatingHoursEnd = "08:00"
				},
				errIs: station.ErrInvalidOperatingHours,
			},
			{
				name: "start after end",
				mutate: func(b *builder.StationBuilder) {
					b.OperatingHoursStart = "18:00"
					b.OperatingHoursEnd = "06:00"
				},
				errIs: station.ErrInvalidOperatingHours,
			},
		})
	})
}

func TestStationUpdate(t *testing.T) {
	st, err := builder.NewStationBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("valid update replaces attributes", func(t *testing.T) {
		err := st.Update("Rotterdam Hub", "Rotterdam, Netherlands", 200, st.OperatingHours(), false)
		require.NoError(t, err)
		assert.Equal(t, "Rotterdam Hub", st.Name())
		assert.Equal(t, float64(200), st.CapacityPerHour())
		assert.False(t, st.IsActive())
	})

	t.Run("invalid update leaves entity untouched", func(t *testing.T) {
		before := st.Name()
		err := st.Update("", st.Location(), st.CapacityPerHour(), st.OperatingHours(), st.IsActive())
		require.ErrorIs(t, err, station.ErrEmptyStationName)
		assert.Equal(t, before, st.Name())
	})
}

func TestOperatingHoursContains(t *testing.T) {
	st, err := builder.NewStationBuilder().BuildDomain()
	require.NoError(t, err)
	hours := st.OperatingHours()

	parse := func(s string) (start, end string) { return s[:5], s[6:] }
	cases := []struct {
		name     string
		window   string
		expected bool
	}{
		{name: "inside", window: "08:00 10:00", expected: true},
		{name: "exact bounds", window: "06:00 22:00", expected: true},
		{name: "starts too early", window: "05:00 08:00", expected: false},
		{name: "ends too late", window: "20:00 23:00", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			startStr, endStr := parse(tc.window)
			start := mustParse(t, startStr)
			end := mustParse(t, endStr)
			assert.Equal(t, tc.expected, hours.Contains(start, end))
		})
	}
}

func mustParse(t *testing.T, s string) timeofday.TimeOfDay {
	t.Helper()
	v, err := timeofday.Parse(s)
	require.NoError(t, err)
	return v
}
