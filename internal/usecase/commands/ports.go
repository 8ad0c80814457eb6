package commands

import (
	"context"
	"time"

	"lng-loading/internal/domain/customer"
	"lng-loading/internal/domain/reservation"
	"lng-loading/internal/domain/slot"
	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	"lng-loading/internal/infra"

	"github.com/google/uuid"
)

type StationRepository interface {
	Create(ctx context.Context, db infra.DBTX, st *station.Station) error
	Update(ctx context.Context, db infra.DBTX, st *station.Station) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*station.Station, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, db infra.DBTX, c *customer.Customer) error
	Update(ctx context.Context, db infra.DBTX, c *customer.Customer) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*customer.Customer, error)
}

type SlotRepository interface {
	Create(ctx context.Context, db infra.DBTX, s *slot.Slot) error
	Update(ctx context.Context, db infra.DBTX, s *slot.Slot) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*slot.Slot, error)
	HasOverlapping(ctx context.Context, db infra.DBTX, stationID uuid.UUID, date time.Time, start, end timeofday.TimeOfDay, excludeID uuid.UUID) (bool, error)
	ClaimAvailable(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status slot.Status) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	HasActiveForSlotAndCustomer(ctx context.Context, db infra.DBTX, slotID, customerID uuid.UUID) (bool, error)
}
