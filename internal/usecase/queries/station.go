package queries

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound         = errs.New("station not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrSlotNotFound            = errs.New("loading slot not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// normalizeLimit clamps a requested page size into [1, maxLimit],
// falling back to defaultLimit when unset.
func normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

type StationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	List(ctx context.Context, isActive *bool, limit, offset int32) ([]*StationView, error)
}

type stationQueriesImpl struct {
	stations StationReadStore
}

func NewStationQueries(stations StationReadStore) StationQueries {
	return &stationQueriesImpl{stations: stations}
}

func (q *stationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StationView, error) {
	view, err := q.stations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *stationQueriesImpl) List(ctx context.Context, isActive *bool, limit, offset int32) ([]*StationView, error) {
	views, err := q.stations.List(ctx, isActive, normalizeLimit(limit), offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
