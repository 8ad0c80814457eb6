package timeofday

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFormat = errors.New("time of day must be in HH:MM format")

// TimeOfDay is a wall-clock time within a day, minute resolution.
// The zero value is midnight.
type TimeOfDay struct {
	minutes int
}

func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidFormat
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func FromMicroseconds(us int64) TimeOfDay {
	return TimeOfDay{minutes: int(us / int64(time.Minute/time.Microsecond))}
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Microseconds() int64 {
	return int64(t.minutes) * int64(time.Minute/time.Microsecond)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes
}
