package commands

import (
	"context"

	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound      = errs.New("station not found")
	ErrDuplicateStationName = errs.New("station name already exists")
)

type StationCommands interface {
	Create(ctx context.Context, req reqdto.CreateStationRequest) (*queries.StationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateStationRequest) (*queries.StationView, error)
}

type stationCommandsImpl struct {
	pool         infra.DBTX
	stationRepo  StationRepository
	stationViews queries.StationReadStore
}

func NewStationCommands(
	pool infra.DBTX,
	stationRepo StationRepository,
	stationViews queries.StationReadStore,
) StationCommands {
	return &stationCommandsImpl{
		pool:         pool,
		stationRepo:  stationRepo,
		stationViews: stationViews,
	}
}

func (c *stationCommandsImpl) Create(ctx context.Context, req reqdto.CreateStationRequest) (*queries.StationView, error) {
	stationEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.stationRepo.Create(ctx, c.pool, stationEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateStationName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.stationViews.FindByID(ctx, stationEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *stationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateStationRequest) (*queries.StationView, error) {
	stationEntity, err := c.stationRepo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := req.Apply(stationEntity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.stationRepo.Update(ctx, c.pool, stationEntity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateStationName
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrStationNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.stationViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
