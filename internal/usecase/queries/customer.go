package queries

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerDetailView, error)
	List(ctx context.Context, contractType *string, limit, offset int32) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	customers    CustomerReadStore
	reservations ReservationReadStore
}

func NewCustomerQueries(customers CustomerReadStore, reservations ReservationReadStore) CustomerQueries {
	return &customerQueriesImpl{customers: customers, reservations: reservations}
}

// GetByID returns the customer together with their reservation history,
// newest first.
func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerDetailView, error) {
	view, err := q.customers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	history, err := q.reservations.ListByCustomer(ctx, id, defaultLimit, 0)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CustomerDetailView{
		CustomerView: *view,
		Reservations: history,
	}, nil
}

func (q *customerQueriesImpl) List(ctx context.Context, contractType *string, limit, offset int32) ([]*CustomerView, error) {
	views, err := q.customers.List(ctx, contractType, normalizeLimit(limit), offset)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
