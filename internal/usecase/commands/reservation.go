package commands

import (
	"context"
	"errors"
	"log/slog"

	"lng-loading/internal/domain/reservation"
	"lng-loading/internal/domain/slot"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSlotNotFound            = errs.New("loading slot not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrSlotNotAvailable        = errs.New("loading slot is not available")
	ErrVolumeExceedsCapacity   = errs.New("requested volume exceeds slot capacity")
	ErrDuplicateReservation    = errs.New("customer already has a reservation for this slot")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidStatusTransition = errs.New("invalid reservation status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// TxBeginner opens a transaction; satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	db               TxBeginner
	pool             infra.DBTX
	slotRepo         SlotRepository
	customerRepo     CustomerRepository
	reservationRepo  ReservationRepository
	reservationViews queries.ReservationReadStore
}

func NewReservationCommands(
	db TxBeginner,
	pool infra.DBTX,
	slotRepo SlotRepository,
	customerRepo CustomerRepository,
	reservationRepo ReservationRepository,
	reservationViews queries.ReservationReadStore,
) ReservationCommands {
	return &reservationCommandsImpl{
		db:               db,
		pool:             pool,
		slotRepo:         slotRepo,
		customerRepo:     customerRepo,
		reservationRepo:  reservationRepo,
		reservationViews: reservationViews,
	}
}

// Create books a slot. The slot claim and the reservation insert run in one
// transaction; the conditional claim serializes concurrent bookings so at
// most one of them succeeds.
func (c *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	slotEntity, err := c.slotRepo.FindByID(ctx, c.pool, req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err = c.customerRepo.FindByID(ctx, c.pool, req.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hasExisting, err := c.reservationRepo.HasActiveForSlotAndCustomer(ctx, c.pool, req.SlotID, req.CustomerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hasExisting {
		return nil, ErrDuplicateReservation
	}

	reservationEntity, err := req.ToDomain(slotEntity)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSlotNotBookable):
			return nil, ErrSlotNotAvailable
		case errors.Is(err, reservation.ErrVolumeExceedsCapacity):
			return nil, ErrVolumeExceedsCapacity
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	if err := c.executeBookingTransaction(ctx, reservationEntity); err != nil {
		return nil, err
	}

	view, err := c.reservationViews.FindByID(ctx, reservationEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) executeBookingTransaction(ctx context.Context, res *reservation.Reservation) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.slotRepo.ClaimAvailable(ctx, tx, res.SlotID()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrSlotNotAvailable
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.reservationRepo.Create(ctx, tx, res); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Update patches reservation details and drives the status state machine.
// Completing or cancelling also retires the owning slot in the same
// transaction so availability queries stop returning it.
func (c *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
	reservationEntity, err := c.reservationRepo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := reservationEntity.UpdateDetails(req.TruckLicensePlate, req.DriverName, req.RequestedVolume, req.Notes); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var slotStatus *slot.Status
	if req.Status != nil {
		next := reservation.Status(*req.Status)
		previous := reservationEntity.Status()
		if err := reservationEntity.TransitionTo(next); err != nil {
			return nil, errs.Mark(err, ErrInvalidStatusTransition)
		}
		if previous != reservationEntity.Status() {
			if mapped, changed := reservation.SlotStatusAfter(reservationEntity.Status()); changed {
				slotStatus = &mapped
			}
		}
	}

	if err := c.executeUpdateTransaction(ctx, reservationEntity, slotStatus); err != nil {
		return nil, err
	}

	view, err := c.reservationViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) executeUpdateTransaction(ctx context.Context, res *reservation.Reservation, slotStatus *slot.Status) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.reservationRepo.Update(ctx, tx, res); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if slotStatus != nil {
		if err := c.slotRepo.UpdateStatus(ctx, tx, res.SlotID(), *slotStatus); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
