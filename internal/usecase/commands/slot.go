package commands

import (
	"context"
	"errors"

	"lng-loading/internal/domain/slot"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrStationInactive  = errs.New("station is not active")
	ErrSlotOverlap      = errs.New("slot overlaps an existing slot at this station")
	ErrSlotStatusLocked = errs.New("slot status is managed by its reservation")
)

type SlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSlotRequest) (*queries.SlotView, error)
}

type slotCommandsImpl struct {
	pool        infra.DBTX
	stationRepo StationRepository
	slotRepo    SlotRepository
	slotViews   queries.SlotReadStore
}

func NewSlotCommands(
	pool infra.DBTX,
	stationRepo StationRepository,
	slotRepo SlotRepository,
	slotViews queries.SlotReadStore,
) SlotCommands {
	return &slotCommandsImpl{
		pool:        pool,
		stationRepo: stationRepo,
		slotRepo:    slotRepo,
		slotViews:   slotViews,
	}
}

// Create opens a new loading slot on an active station. The window must lie
// within the station's operating hours and must not intersect another
// non-cancelled slot on the same station and date.
func (c *slotCommandsImpl) Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error) {
	stationEntity, err := c.stationRepo.FindByID(ctx, c.pool, req.StationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !stationEntity.IsActive() {
		return nil, ErrStationInactive
	}

	slotEntity, err := req.ToDomain(stationEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	overlaps, err := c.slotRepo.HasOverlapping(
		ctx, c.pool,
		slotEntity.StationID(), slotEntity.Date(),
		slotEntity.Start(), slotEntity.End(),
		uuid.Nil,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if overlaps {
		return nil, ErrSlotOverlap
	}

	if err := c.slotRepo.Create(ctx, c.pool, slotEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.slotViews.FindByID(ctx, slotEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *slotCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSlotRequest) (*queries.SlotView, error) {
	slotEntity, err := c.slotRepo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if req.Reschedules() {
		stationEntity, err := c.stationRepo.FindByID(ctx, c.pool, slotEntity.StationID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := req.Apply(slotEntity, stationEntity); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		overlaps, err := c.slotRepo.HasOverlapping(
			ctx, c.pool,
			slotEntity.StationID(), slotEntity.Date(),
			slotEntity.Start(), slotEntity.End(),
			slotEntity.ID(),
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return nil, ErrSlotOverlap
		}
	}

	if req.Status != nil {
		if err := slotEntity.ChangeStatus(slot.Status(*req.Status)); err != nil {
			if errors.Is(err, slot.ErrStatusLocked) {
				return nil, ErrSlotStatusLocked
			}
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	if err := c.slotRepo.Update(ctx, c.pool, slotEntity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.slotViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
