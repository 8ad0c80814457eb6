package repository

import (
	"context"
	"time"

	"lng-loading/internal/domain/reservation"
	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error {
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, slot_id, customer_id, truck_license_plate, driver_name, requested_volume, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID(),
		res.SlotID(),
		res.CustomerID(),
		res.TruckLicensePlate(),
		res.DriverName(),
		res.RequestedVolume(),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.Notes()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, db infra.DBTX, res *reservation.Reservation) error {
	tag, err := db.Exec(ctx, `
		UPDATE reservations
		SET truck_license_plate = $2, driver_name = $3, requested_volume = $4, status = $5, notes = $6
		WHERE id = $1`,
		res.ID(),
		res.TruckLicensePlate(),
		res.DriverName(),
		res.RequestedVolume(),
		res.Status().String(),
		pgconv.StringPtrToPgtype(res.Notes()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		reservationID uuid.UUID
		slotID        uuid.UUID
		customerID    uuid.UUID
		plate         string
		driverName    string
		volume        float64
		status        string
		notes         pgtype.Text
		createdAt     time.Time
	)
	err := db.QueryRow(ctx, `
		SELECT id, slot_id, customer_id, truck_license_plate, driver_name, requested_volume, status, notes, created_at
		FROM reservations
		WHERE id = $1`, id).Scan(
		&reservationID, &slotID, &customerID, &plate, &driverName, &volume, &status, &notes, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return reservation.ReconstructReservation(
		reservationID, slotID, customerID,
		plate, driverName, volume,
		reservation.Status(status),
		pgconv.StringPtrFromPgtype(notes),
		createdAt,
	), nil
}

// HasActiveForSlotAndCustomer reports whether the customer already holds a
// non-cancelled reservation on the slot.
func (r *ReservationRepository) HasActiveForSlotAndCustomer(
	ctx context.Context,
	db infra.DBTX,
	slotID, customerID uuid.UUID,
) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE slot_id = $1
			  AND customer_id = $2
			  AND status <> 'cancelled'
		)`, slotID, customerID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer reservation", err)
	}
	return exists, nil
}
