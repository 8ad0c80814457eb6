package queries

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context, filter SlotFilter) ([]*SlotView, error)
	ListAvailable(ctx context.Context, filter AvailableSlotFilter) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	slots SlotReadStore
}

func NewSlotQueries(slots SlotReadStore) SlotQueries {
	return &slotQueriesImpl{slots: slots}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.slots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *slotQueriesImpl) List(ctx context.Context, filter SlotFilter) ([]*SlotView, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	views, err := q.slots.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListAvailable returns bookable slots matching the filter, soonest first.
func (q *slotQueriesImpl) ListAvailable(ctx context.Context, filter AvailableSlotFilter) ([]*SlotView, error) {
	views, err := q.slots.ListAvailable(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
