package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read store ports. Implementations live in internal/infra/readstore.

type StationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	List(ctx context.Context, isActive *bool, limit, offset int32) ([]*StationView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, contractType *string, limit, offset int32) ([]*CustomerView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context, filter SlotFilter) ([]*SlotView, error)
	ListAvailable(ctx context.Context, filter AvailableSlotFilter) ([]*SlotView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*ReservationView, error)
}

type DashboardReadStore interface {
	CountReservationsOn(ctx context.Context, date time.Time) (int, error)
	CountAvailableSlotsOn(ctx context.Context, date time.Time) (int, error)
	CountActiveCustomers(ctx context.Context) (int, error)
	CompletedStatsBetween(ctx context.Context, from, to time.Time) (int, float64, error)
	ScheduleOn(ctx context.Context, date time.Time) ([]*TodayScheduleItem, error)
	RecentActivity(ctx context.Context, limit int32) ([]*ActivityItem, error)
}
