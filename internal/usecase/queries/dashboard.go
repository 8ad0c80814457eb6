package queries

import (
	"context"
	"time"

	"lng-loading/internal/pkg/clock"
	"lng-loading/internal/pkg/errs"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	TodaySchedule(ctx context.Context) ([]*TodayScheduleItem, error)
	RecentActivity(ctx context.Context, limit int32) ([]*ActivityItem, error)
}

type dashboardQueriesImpl struct {
	dashboard DashboardReadStore
	clock     clock.Clock
}

func NewDashboardQueries(dashboard DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{dashboard: dashboard, clock: clk}
}

// Stats aggregates the dashboard counters. Daily figures cover today's slot
// date; weekly figures cover the current ISO week, Monday through Sunday.
func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	today := q.today()
	weekStart, weekEnd := isoWeekBounds(today)

	reservationsToday, err := q.dashboard.CountReservationsOn(ctx, today)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	availableToday, err := q.dashboard.CountAvailableSlotsOn(ctx, today)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	activeCustomers, err := q.dashboard.CountActiveCustomers(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	completedCount, completedVolume, err := q.dashboard.CompletedStatsBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &DashboardStats{
		TotalReservationsToday:    reservationsToday,
		AvailableSlotsToday:       availableToday,
		ActiveCustomers:           activeCustomers,
		CompletedLoadingsThisWeek: completedCount,
		TotalVolumeThisWeek:       completedVolume,
	}, nil
}

func (q *dashboardQueriesImpl) TodaySchedule(ctx context.Context) ([]*TodayScheduleItem, error) {
	items, err := q.dashboard.ScheduleOn(ctx, q.today())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *dashboardQueriesImpl) RecentActivity(ctx context.Context, limit int32) ([]*ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	items, err := q.dashboard.RecentActivity(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *dashboardQueriesImpl) today() time.Time {
	now := q.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// isoWeekBounds returns the Monday and Sunday of the week containing day.
func isoWeekBounds(day time.Time) (time.Time, time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
