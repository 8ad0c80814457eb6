package slot

import (
	"errors"
	"time"

	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow         = errors.New("slot start time must be before end time")
	ErrNonPositiveVolume     = errors.New("slot max volume must be positive")
	ErrOutsideOperatingHours = errors.New("slot time must be within station operating hours")
	ErrInvalidStatus         = errors.New("invalid slot status")
	ErrStatusLocked          = errors.New("slot status is managed by its reservation")
)

type Slot struct {
	id        uuid.UUID
	stationID uuid.UUID
	date      time.Time
	start     timeofday.TimeOfDay
	end       timeofday.TimeOfDay
	maxVolume float64
	status    Status
}

// NewSlot creates an available slot after checking the window against the
// owning station's operating hours. Overlap with existing slots is checked
// at the persistence layer, not here.
func NewSlot(
	st *station.Station,
	date time.Time,
	start, end timeofday.TimeOfDay,
	maxVolume float64,
) (*Slot, error) {
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}
	if maxVolume <= 0 {
		return nil, ErrNonPositiveVolume
	}
	if !st.OperatingHours().Contains(start, end) {
		return nil, ErrOutsideOperatingHours
	}

	return &Slot{
		id:        uuid.New(),
		stationID: st.ID(),
		date:      truncateToDate(date),
		start:     start,
		end:       end,
		maxVolume: maxVolume,
		status:    StatusAvailable,
	}, nil
}

func ReconstructSlot(
	id, stationID uuid.UUID,
	date time.Time,
	start, end timeofday.TimeOfDay,
	maxVolume float64,
	status Status,
) *Slot {
	return &Slot{
		id:        id,
		stationID: stationID,
		date:      date,
		start:     start,
		end:       end,
		maxVolume: maxVolume,
		status:    status,
	}
}

// Reschedule moves the slot to a new window after revalidating it against
// the owning station's operating hours. Callers merge partial edits against
// the current values before calling.
func (s *Slot) Reschedule(
	st *station.Station,
	date time.Time,
	start, end timeofday.TimeOfDay,
	maxVolume float64,
) error {
	if !start.Before(end) {
		return ErrInvalidWindow
	}
	if maxVolume <= 0 {
		return ErrNonPositiveVolume
	}
	if !st.OperatingHours().Contains(start, end) {
		return ErrOutsideOperatingHours
	}

	s.date = truncateToDate(date)
	s.start = start
	s.end = end
	s.maxVolume = maxVolume
	return nil
}

// ChangeStatus flips a slot between available and cancelled. Reserved and
// completed slots follow their reservation's lifecycle and cannot be changed
// directly.
func (s *Slot) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == s.status {
		return nil
	}
	manual := func(st Status) bool { return st == StatusAvailable || st == StatusCancelled }
	if !manual(s.status) || !manual(next) {
		return ErrStatusLocked
	}
	s.status = next
	return nil
}

// Overlaps reports whether two windows on the same station and date intersect.
func (s *Slot) Overlaps(start, end timeofday.TimeOfDay) bool {
	return s.start.Before(end) && start.Before(s.end)
}

// CanAccommodate reports whether the requested volume fits the slot capacity.
func (s *Slot) CanAccommodate(volume float64) bool {
	return volume > 0 && volume <= s.maxVolume
}

func (s *Slot) ID() uuid.UUID                  { return s.id }
func (s *Slot) StationID() uuid.UUID           { return s.stationID }
func (s *Slot) Date() time.Time                { return s.date }
func (s *Slot) Start() timeofday.TimeOfDay     { return s.start }
func (s *Slot) End() timeofday.TimeOfDay       { return s.end }
func (s *Slot) MaxVolume() float64             { return s.maxVolume }
func (s *Slot) Status() Status                 { return s.status }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
