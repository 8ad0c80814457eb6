//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lng-loading/internal/pkg/clock"
	"lng-loading/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardStore struct {
	countedOn      *time.Time
	availableOn    *time.Time
	completedFrom  *time.Time
	completedTo    *time.Time
	scheduledOn    *time.Time
	activityLimit  *int32
	reservations   int
	availableSlots int
	customers      int
	completed      int
	volume         float64
}

func (s *fakeDashboardStore) CountReservationsOn(_ context.Context, date time.Time) (int, error) {
	s.countedOn = &date
	return s.reservations, nil
}

func (s *fakeDashboardStore) CountAvailableSlotsOn(_ context.Context, date time.Time) (int, error) {
	s.availableOn = &date
	return s.availableSlots, nil
}

func (s *fakeDashboardStore) CountActiveCustomers(_ context.Context) (int, error) {
	return s.customers, nil
}

func (s *fakeDashboardStore) CompletedStatsBetween(_ context.Context, from, to time.Time) (int, float64, error) {
	s.completedFrom = &from
	s.completedTo = &to
	return s.completed, s.volume, nil
}

func (s *fakeDashboardStore) ScheduleOn(_ context.Context, date time.Time) ([]*queries.TodayScheduleItem, error) {
	s.scheduledOn = &date
	return []*queries.TodayScheduleItem{}, nil
}

func (s *fakeDashboardStore) RecentActivity(_ context.Context, limit int32) ([]*queries.ActivityItem, error) {
	s.activityLimit = &limit
	return []*queries.ActivityItem{}, nil
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counters for today and this week", func(t *testing.T) {
		store := &fakeDashboardStore{
			reservations:   7,
			availableSlots: 3,
			customers:      12,
			completed:      25,
			volume:         812.5,
		}
		// Wednesday afternoon in a non-UTC zone.
		loc := time.FixedZone("CEST", 2*60*60)
		clk := clock.NewMockClock(time.Date(2024, time.June, 5, 15, 30, 0, 0, loc))

		stats, err := queries.NewDashboardQueries(store, clk).Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 7, stats.TotalReservationsToday)
		assert.Equal(t, 3, stats.AvailableSlotsToday)
		assert.Equal(t, 12, stats.ActiveCustomers)
		assert.Equal(t, 25, stats.CompletedLoadingsThisWeek)
		assert.Equal(t, 812.5, stats.TotalVolumeThisWeek)

		today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
		require.NotNil(t, store.countedOn)
		assert.Equal(t, today, *store.countedOn)
		require.NotNil(t, store.availableOn)
		assert.Equal(t, today, *store.availableOn)
	})

	t.Run("week runs Monday through Sunday", func(t *testing.T) {
		cases := []struct {
			name string
			now  time.Time
		}{
			{name: "monday", now: time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)},
			{name: "midweek", now: time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)},
			{name: "sunday", now: time.Date(2024, time.June, 9, 23, 0, 0, 0, time.UTC)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := &fakeDashboardStore{}
				clk := clock.NewMockClock(tc.now)

				_, err := queries.NewDashboardQueries(store, clk).Stats(ctx)
				require.NoError(t, err)

				require.NotNil(t, store.completedFrom)
				assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), *store.completedFrom)
				assert.Equal(t, time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), *store.completedTo)
			})
		}
	})
}

func TestDashboardTodaySchedule(t *testing.T) {
	store := &fakeDashboardStore{}
	clk := clock.NewMockClock(time.Date(2024, time.June, 5, 23, 59, 0, 0, time.UTC))

	items, err := queries.NewDashboardQueries(store, clk).TodaySchedule(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)

	require.NotNil(t, store.scheduledOn)
	assert.Equal(t, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), *store.scheduledOn)
}

func TestDashboardRecentActivity(t *testing.T) {
	cases := []struct {
		name     string
		limit    int32
		expected int32
	}{
		{name: "zero falls back to default", limit: 0, expected: 10},
		{name: "negative falls back to default", limit: -3, expected: 10},
		{name: "explicit limit passes through", limit: 25, expected: 25},
		{name: "oversized limit is capped", limit: 500, expected: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeDashboardStore{}
			clk := clock.NewMockClock(time.Now())

			_, err := queries.NewDashboardQueries(store, clk).RecentActivity(context.Background(), tc.limit)
			require.NoError(t, err)

			require.NotNil(t, store.activityLimit)
			assert.Equal(t, tc.expected, *store.activityLimit)
		})
	}
}
