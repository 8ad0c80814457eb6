package reservation

import (
	"errors"
	"strings"
	"time"

	"lng-loading/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrSlotNotBookable        = errors.New("loading slot is not available")
	ErrVolumeExceedsCapacity  = errors.New("requested volume exceeds slot maximum")
	ErrNonPositiveVolume      = errors.New("requested volume must be positive")
	ErrEmptyLicensePlate      = errors.New("truck license plate cannot be empty")
	ErrLicensePlateTooLong    = errors.New("truck license plate is too long (max 20 characters)")
	ErrEmptyDriverName        = errors.New("driver name cannot be empty")
	ErrInvalidStatus          = errors.New("invalid reservation status")
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")
)

const MaxLicensePlateLength = 20

type Reservation struct {
	id                uuid.UUID
	slotID            uuid.UUID
	customerID        uuid.UUID
	truckLicensePlate string
	driverName        string
	requestedVolume   float64
	status            Status
	notes             *string
	createdAt         time.Time
}

// NewReservation books the given slot for a customer. The slot must be
// bookable and the requested volume must fit its capacity; the caller is
// responsible for atomically claiming the slot in the same transaction.
func NewReservation(
	s *slot.Slot,
	customerID uuid.UUID,
	truckLicensePlate, driverName string,
	requestedVolume float64,
	notes *string,
) (*Reservation, error) {
	if !s.Status().IsBookable() {
		return nil, ErrSlotNotBookable
	}
	if requestedVolume <= 0 {
		return nil, ErrNonPositiveVolume
	}
	if !s.CanAccommodate(requestedVolume) {
		return nil, ErrVolumeExceedsCapacity
	}

	truckLicensePlate = strings.TrimSpace(truckLicensePlate)
	if truckLicensePlate == "" {
		return nil, ErrEmptyLicensePlate
	}
	if len(truckLicensePlate) > MaxLicensePlateLength {
		return nil, ErrLicensePlateTooLong
	}
	driverName = strings.TrimSpace(driverName)
	if driverName == "" {
		return nil, ErrEmptyDriverName
	}

	return &Reservation{
		id:                uuid.New(),
		slotID:            s.ID(),
		customerID:        customerID,
		truckLicensePlate: truckLicensePlate,
		driverName:        driverName,
		requestedVolume:   requestedVolume,
		status:            StatusPending,
		notes:             notes,
	}, nil
}

func ReconstructReservation(
	id, slotID, customerID uuid.UUID,
	truckLicensePlate, driverName string,
	requestedVolume float64,
	status Status,
	notes *string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		slotID:            slotID,
		customerID:        customerID,
		truckLicensePlate: truckLicensePlate,
		driverName:        driverName,
		requestedVolume:   requestedVolume,
		status:            status,
		notes:             notes,
		createdAt:         createdAt,
	}
}

// UpdateDetails applies a partial edit. Nil fields keep their current value;
// notes may be set to an empty string to clear them.
func (r *Reservation) UpdateDetails(truckLicensePlate, driverName *string, requestedVolume *float64, notes *string) error {
	if truckLicensePlate != nil {
		plate := strings.TrimSpace(*truckLicensePlate)
		if plate == "" {
			return ErrEmptyLicensePlate
		}
		if len(plate) > MaxLicensePlateLength {
			return ErrLicensePlateTooLong
		}
		r.truckLicensePlate = plate
	}
	if driverName != nil {
		name := strings.TrimSpace(*driverName)
		if name == "" {
			return ErrEmptyDriverName
		}
		r.driverName = name
	}
	if requestedVolume != nil {
		if *requestedVolume <= 0 {
			return ErrNonPositiveVolume
		}
		r.requestedVolume = *requestedVolume
	}
	if notes != nil {
		r.notes = notes
	}
	return nil
}

// TransitionTo moves the reservation along the status state machine.
func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == r.status {
		return nil
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	r.status = next
	return nil
}

// SlotStatusAfter returns the slot status implied by a reservation status,
// and whether the slot must change at all. Completing or cancelling a
// reservation retires its slot; every other state keeps it reserved.
func SlotStatusAfter(s Status) (slot.Status, bool) {
	switch s {
	case StatusCompleted:
		return slot.StatusCompleted, true
	case StatusCancelled:
		return slot.StatusCancelled, true
	default:
		return "", false
	}
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) SlotID() uuid.UUID         { return r.slotID }
func (r *Reservation) CustomerID() uuid.UUID     { return r.customerID }
func (r *Reservation) TruckLicensePlate() string { return r.truckLicensePlate }
func (r *Reservation) DriverName() string        { return r.driverName }
func (r *Reservation) RequestedVolume() float64  { return r.requestedVolume }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) Notes() *string            { return r.notes }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
