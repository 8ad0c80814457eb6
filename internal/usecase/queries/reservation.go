package queries

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
}

func NewReservationQueries(reservations ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	views, err := q.reservations.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*ReservationView, error) {
	views, err := q.reservations.ListByCustomer(ctx, customerID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
