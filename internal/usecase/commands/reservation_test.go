//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lng-loading/internal/domain/customer"
	"lng-loading/internal/domain/reservation"
	"lng-loading/internal/domain/slot"
	"lng-loading/internal/domain/timeofday"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/infra"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"
	"lng-loading/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx satisfies pgx.Tx for the two methods the commands touch; anything
// else panics through the embedded nil interface.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	tx *fakeTx
}

func (b *fakeTxBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	b.tx = &fakeTx{}
	return b.tx, nil
}

type fakeSlotRepo struct {
	findByID       func(id uuid.UUID) (*slot.Slot, error)
	claimAvailable func(id uuid.UUID) error
	updatedStatus  *slot.Status
}

func (r *fakeSlotRepo) Create(_ context.Context, _ infra.DBTX, _ *slot.Slot) error { return nil }
func (r *fakeSlotRepo) Update(_ context.Context, _ infra.DBTX, _ *slot.Slot) error { return nil }

func (r *fakeSlotRepo) FindByID(_ context.Context, _ infra.DBTX, id uuid.UUID) (*slot.Slot, error) {
	return r.findByID(id)
}

func (r *fakeSlotRepo) HasOverlapping(_ context.Context, _ infra.DBTX, _ uuid.UUID, _ time.Time, _, _ timeofday.TimeOfDay, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeSlotRepo) ClaimAvailable(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if r.claimAvailable != nil {
		return r.claimAvailable(id)
	}
	return nil
}

func (r *fakeSlotRepo) UpdateStatus(_ context.Context, _ infra.DBTX, _ uuid.UUID, status slot.Status) error {
	r.updatedStatus = &status
	return nil
}

type fakeCustomerRepo struct {
	findByID func(id uuid.UUID) (*customer.Customer, error)
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ infra.DBTX, _ *customer.Customer) error {
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, _ infra.DBTX, _ *customer.Customer) error {
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, _ infra.DBTX, _ uuid.UUID) error { return nil }

func (r *fakeCustomerRepo) FindByID(_ context.Context, _ infra.DBTX, id uuid.UUID) (*customer.Customer, error) {
	return r.findByID(id)
}

type fakeReservationRepo struct {
	findByID  func(id uuid.UUID) (*reservation.Reservation, error)
	hasActive bool
	created   *reservation.Reservation
	updated   *reservation.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, _ infra.DBTX, res *reservation.Reservation) error {
	r.created = res
	return nil
}

func (r *fakeReservationRepo) Update(_ context.Context, _ infra.DBTX, res *reservation.Reservation) error {
	r.updated = res
	return nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, _ infra.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	return r.findByID(id)
}

func (r *fakeReservationRepo) HasActiveForSlotAndCustomer(_ context.Context, _ infra.DBTX, _, _ uuid.UUID) (bool, error) {
	return r.hasActive, nil
}

type fakeReservationViews struct {
	view *queries.ReservationView
}

func (v *fakeReservationViews) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return v.view, nil
}

func (v *fakeReservationViews) List(_ context.Context, _ queries.ReservationFilter) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (v *fakeReservationViews) ListByCustomer(_ context.Context, _ uuid.UUID, _, _ int32) ([]*queries.ReservationView, error) {
	return nil, nil
}

type fixture struct {
	tx       *fakeTxBeginner
	slots    *fakeSlotRepo
	custs    *fakeCustomerRepo
	resRepo  *fakeReservationRepo
	views    *fakeReservationViews
	commands commands.ReservationCommands
}

func newFixture(t *testing.T, slotStatus string) *fixture {
	t.Helper()

	s := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
		b.Status = slotStatus
	}).BuildReconstructed()

	cust, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)

	f := &fixture{
		tx: &fakeTxBeginner{},
		slots: &fakeSlotRepo{
			findByID: func(uuid.UUID) (*slot.Slot, error) { return s, nil },
		},
		custs: &fakeCustomerRepo{
			findByID: func(uuid.UUID) (*customer.Customer, error) { return cust, nil },
		},
		resRepo: &fakeReservationRepo{},
		views:   &fakeReservationViews{view: builder.NewReservationBuilder().BuildView()},
	}
	f.commands = commands.NewReservationCommands(f.tx, nil, f.slots, f.custs, f.resRepo, f.views)
	return f
}

func TestReservationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("books the slot and commits", func(t *testing.T) {
		f := newFixture(t, "available")
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		view, err := f.commands.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, view)

		require.NotNil(t, f.resRepo.created)
		assert.Equal(t, reservation.StatusPending, f.resRepo.created.Status())
		assert.True(t, f.tx.tx.committed)
		assert.False(t, f.tx.tx.rolledBack)
	})

	t.Run("slot not found", func(t *testing.T) {
		f := newFixture(t, "available")
		f.slots.findByID = func(uuid.UUID) (*slot.Slot, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "slot not found")
		}

		_, err := f.commands.Create(ctx, builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("customer not found", func(t *testing.T) {
		f := newFixture(t, "available")
		f.custs.findByID = func(uuid.UUID) (*customer.Customer, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "customer not found")
		}

		_, err := f.commands.Create(ctx, builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrCustomerNotFound)
	})

	t.Run("duplicate active reservation", func(t *testing.T) {
		f := newFixture(t, "available")
		f.resRepo.hasActive = true

		_, err := f.commands.Create(ctx, builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrDuplicateReservation)
		assert.Nil(t, f.resRepo.created)
	})

	t.Run("slot already reserved", func(t *testing.T) {
		f := newFixture(t, "reserved")

		_, err := f.commands.Create(ctx, builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrSlotNotAvailable)
	})

	t.Run("volume exceeds slot capacity", func(t *testing.T) {
		f := newFixture(t, "available")
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RequestedVolume = 60
		}).BuildCreateRequestDTO()

		_, err := f.commands.Create(ctx, req)
		require.ErrorIs(t, err, commands.ErrVolumeExceedsCapacity)
	})

	t.Run("lost the claim race", func(t *testing.T) {
		f := newFixture(t, "available")
		f.slots.claimAvailable = func(uuid.UUID) error {
			return infra.NewRepoErr(infra.KindConflict, "slot is no longer available")
		}

		_, err := f.commands.Create(ctx, builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrSlotNotAvailable)
		assert.Nil(t, f.resRepo.created)
		assert.True(t, f.tx.tx.rolledBack)
	})

	t.Run("invalid details map to domain validation", func(t *testing.T) {
		f := newFixture(t, "available")
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.DriverName = ""
		}).BuildCreateRequestDTO()

		_, err := f.commands.Create(ctx, req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestReservationUpdate(t *testing.T) {
	ctx := context.Background()

	withReservation := func(f *fixture, status string) *reservation.Reservation {
		r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = status
		}).BuildReconstructed()
		f.resRepo.findByID = func(uuid.UUID) (*reservation.Reservation, error) { return r, nil }
		return r
	}

	t.Run("reservation not found", func(t *testing.T) {
		f := newFixture(t, "reserved")
		f.resRepo.findByID = func(uuid.UUID) (*reservation.Reservation, error) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}

		_, err := f.commands.Update(ctx, uuid.New(), builder.NewReservationBuilder().BuildUpdateRequestDTO())
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("detail patch leaves the slot alone", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "pending")

		plate := "9-XYZ-999"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) {
			r.TruckLicensePlate = &plate
		}))
		require.NoError(t, err)

		require.NotNil(t, f.resRepo.updated)
		assert.Equal(t, "9-XYZ-999", f.resRepo.updated.TruckLicensePlate())
		assert.Nil(t, f.slots.updatedStatus)
		assert.True(t, f.tx.tx.committed)
	})

	t.Run("confirming keeps the slot reserved", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "pending")

		status := "confirmed"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) { r.Status = &status }))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusConfirmed, f.resRepo.updated.Status())
		assert.Nil(t, f.slots.updatedStatus)
	})

	t.Run("completing retires the slot", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "in_progress")

		status := "completed"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) { r.Status = &status }))
		require.NoError(t, err)

		require.NotNil(t, f.slots.updatedStatus)
		assert.Equal(t, slot.StatusCompleted, *f.slots.updatedStatus)
	})

	t.Run("cancelling retires the slot", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "confirmed")

		status := "cancelled"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) { r.Status = &status }))
		require.NoError(t, err)

		require.NotNil(t, f.slots.updatedStatus)
		assert.Equal(t, slot.StatusCancelled, *f.slots.updatedStatus)
	})

	t.Run("same status is a no-op for the slot", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "completed")

		status := "completed"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) { r.Status = &status }))
		require.NoError(t, err)
		assert.Nil(t, f.slots.updatedStatus)
	})

	t.Run("invalid transition", func(t *testing.T) {
		f := newFixture(t, "reserved")
		withReservation(f, "pending")

		status := "completed"
		_, err := f.commands.Update(ctx, uuid.New(), reqWith(func(r *reqdto.UpdateReservationRequest) { r.Status = &status }))
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
		assert.Nil(t, f.resRepo.updated)
	})
}

func reqWith(mutate func(*reqdto.UpdateReservationRequest)) reqdto.UpdateReservationRequest {
	var req reqdto.UpdateReservationRequest
	mutate(&req)
	return req
}
