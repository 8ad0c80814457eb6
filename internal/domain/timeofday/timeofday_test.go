//go:build unit

package timeofday_test

import (
	"testing"

	"lng-loading/internal/domain/timeofday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		minutes int
		errIs   error
	}{
		{name: "midnight", input: "00:00", minutes: 0},
		{name: "morning", input: "08:30", minutes: 510},
		{name: "end of day", input: "23:59", minutes: 1439},
		{name: "missing minutes", input: "08", errIs: timeofday.ErrInvalidFormat},
		{name: "out of range hour", input: "25:00", errIs: timeofday.ErrInvalidFormat},
		{name: "with seconds", input: "08:30:15", errIs: timeofday.ErrInvalidFormat},
		{name: "empty", input: "", errIs: timeofday.ErrInvalidFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := timeofday.Parse(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.minutes, actual.Minutes())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:05", "13:45", "23:59"} {
		actual, err := timeofday.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, actual.String())
	}
}

func TestMicrosecondsRoundTrip(t *testing.T) {
	original, err := timeofday.Parse("14:30")
	require.NoError(t, err)

	restored := timeofday.FromMicroseconds(original.Microseconds())
	assert.True(t, original.Equal(restored))
}

func TestOrdering(t *testing.T) {
	early, err := timeofday.Parse("08:00")
	require.NoError(t, err)
	late, err := timeofday.Parse("10:00")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.True(t, late.After(early))
	assert.True(t, early.Equal(early))
}
