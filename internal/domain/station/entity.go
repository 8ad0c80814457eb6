package station

import (
	"errors"
	"strings"

	"lng-loading/internal/domain/timeofday"

	"github.com/google/uuid"
)

var (
	ErrEmptyStationName   = errors.New("station name cannot be empty")
	ErrStationNameTooLong = errors.New("station name is too long (max 255 characters)")
	ErrEmptyLocation      = errors.New("station location cannot be empty")
	ErrLocationTooLong    = errors.New("station location is too long (max 500 characters)")
	ErrNonPositiveCapacity = errors.New("capacity per hour must be positive")
	ErrInvalidOperatingHours = errors.New("operating hours start must be before end")
)

const (
	MaxStationNameLength = 255
	MaxLocationLength    = 500
)

type Station struct {
	id              uuid.UUID
	name            string
	location        string
	capacityPerHour float64
	operatingHours  OperatingHours
	isActive        bool
}

// OperatingHours is the daily window during which a station loads trucks.
type OperatingHours struct {
	start timeofday.TimeOfDay
	end   timeofday.TimeOfDay
}

func NewOperatingHours(start, end timeofday.TimeOfDay) (OperatingHours, error) {
	if !start.Before(end) {
		return OperatingHours{}, ErrInvalidOperatingHours
	}
	return OperatingHours{start: start, end: end}, nil
}

func (h OperatingHours) Start() timeofday.TimeOfDay { return h.start }
func (h OperatingHours) End() timeofday.TimeOfDay   { return h.end }

// Contains reports whether the [start, end] window lies within the operating hours.
func (h OperatingHours) Contains(start, end timeofday.TimeOfDay) bool {
	return !start.Before(h.start) && !end.After(h.end)
}

func NewStation(
	name, location string,
	capacityPerHour float64,
	hours OperatingHours,
	isActive bool,
) (*Station, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateLocation(location); err != nil {
		return nil, err
	}
	if capacityPerHour <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Station{
		id:              uuid.New(),
		name:            strings.TrimSpace(name),
		location:        strings.TrimSpace(location),
		capacityPerHour: capacityPerHour,
		operatingHours:  hours,
		isActive:        isActive,
	}, nil
}

func ReconstructStation(
	id uuid.UUID,
	name, location string,
	capacityPerHour float64,
	hours OperatingHours,
	isActive bool,
) *Station {
	return &Station{
		id:              id,
		name:            name,
		location:        location,
		capacityPerHour: capacityPerHour,
		operatingHours:  hours,
		isActive:        isActive,
	}
}

// Update replaces the station's attributes after validation. Callers merge
// partial edits against the current values before calling.
func (s *Station) Update(
	name, location string,
	capacityPerHour float64,
	hours OperatingHours,
	isActive bool,
) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateLocation(location); err != nil {
		return err
	}
	if capacityPerHour <= 0 {
		return ErrNonPositiveCapacity
	}

	s.name = strings.TrimSpace(name)
	s.location = strings.TrimSpace(location)
	s.capacityPerHour = capacityPerHour
	s.operatingHours = hours
	s.isActive = isActive
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStationName
	}
	if len(name) > MaxStationNameLength {
		return ErrStationNameTooLong
	}
	return nil
}

func validateLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	if len(location) > MaxLocationLength {
		return ErrLocationTooLong
	}
	return nil
}

func (s *Station) ID() uuid.UUID                  { return s.id }
func (s *Station) Name() string                   { return s.name }
func (s *Station) Location() string               { return s.location }
func (s *Station) CapacityPerHour() float64       { return s.capacityPerHour }
func (s *Station) OperatingHours() OperatingHours { return s.operatingHours }
func (s *Station) IsActive() bool                 { return s.isActive }
