package repository

import (
	"context"
	"time"

	"lng-loading/internal/domain/slot"
	"lng-loading/internal/domain/timeofday"
	"lng-loading/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, db infra.DBTX, s *slot.Slot) error {
	_, err := db.Exec(ctx, `
		INSERT INTO loading_slots (id, station_id, date, start_time, end_time, max_volume, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID(),
		s.StationID(),
		s.Date(),
		timeToPg(s.Start()),
		timeToPg(s.End()),
		s.MaxVolume(),
		s.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) Update(ctx context.Context, db infra.DBTX, s *slot.Slot) error {
	tag, err := db.Exec(ctx, `
		UPDATE loading_slots
		SET date = $2, start_time = $3, end_time = $4, max_volume = $5, status = $6
		WHERE id = $1`,
		s.ID(),
		s.Date(),
		timeToPg(s.Start()),
		timeToPg(s.End()),
		s.MaxVolume(),
		s.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*slot.Slot, error) {
	var (
		slotID    uuid.UUID
		stationID uuid.UUID
		date      time.Time
		start     pgtype.Time
		end       pgtype.Time
		maxVolume float64
		status    string
	)
	err := db.QueryRow(ctx, `
		SELECT id, station_id, date, start_time, end_time, max_volume, status
		FROM loading_slots
		WHERE id = $1`, id).Scan(&slotID, &stationID, &date, &start, &end, &maxVolume, &status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get slot", err)
	}
	return slot.ReconstructSlot(
		slotID, stationID, date,
		timeofday.FromMicroseconds(start.Microseconds),
		timeofday.FromMicroseconds(end.Microseconds),
		maxVolume,
		slot.Status(status),
	), nil
}

// HasOverlapping reports whether a non-cancelled slot at the station and
// date intersects the [start, end) window. excludeID skips the slot being
// rescheduled; pass uuid.Nil on create.
func (r *SlotRepository) HasOverlapping(
	ctx context.Context,
	db infra.DBTX,
	stationID uuid.UUID,
	date time.Time,
	start, end timeofday.TimeOfDay,
	excludeID uuid.UUID,
) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM loading_slots
			WHERE station_id = $1
			  AND date = $2
			  AND status <> 'cancelled'
			  AND start_time < $4
			  AND end_time > $3
			  AND id <> $5
		)`, stationID, date, timeToPg(start), timeToPg(end), excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping slots", err)
	}
	return exists, nil
}

// ClaimAvailable flips an available slot to reserved. The conditional
// update is the serialization point that makes double-booking impossible:
// of two concurrent claims, only one sees an affected row.
func (r *SlotRepository) ClaimAvailable(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `
		UPDATE loading_slots
		SET status = 'reserved'
		WHERE id = $1 AND status = 'available'`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to claim slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "slot is not available")
	}
	return nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status slot.Status) error {
	tag, err := db.Exec(ctx, `
		UPDATE loading_slots
		SET status = $2
		WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}
