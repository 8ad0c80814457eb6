package readstore

import (
	"context"
	"fmt"
	"time"

	"lng-loading/internal/infra"
	"lng-loading/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// DashboardReadStore computes the rollups behind /api/dashboard. Every call
// hits the database; nothing is cached.
type DashboardReadStore struct {
	db infra.DBTX
}

func NewDashboardReadStore(db infra.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (s *DashboardReadStore) CountReservationsOn(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT count(*)
		FROM reservations r
		JOIN loading_slots ls ON ls.id = r.slot_id
		WHERE ls.date = $1`, date).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (s *DashboardReadStore) CountAvailableSlotsOn(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT count(*)
		FROM loading_slots
		WHERE date = $1 AND status = 'available'`, date).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available slots", err)
	}
	return count, nil
}

// CountActiveCustomers counts distinct customers holding at least one reservation.
func (s *DashboardReadStore) CountActiveCustomers(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT count(DISTINCT customer_id)
		FROM reservations`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active customers", err)
	}
	return count, nil
}

// CompletedStatsBetween returns the count and summed volume of completed
// reservations whose slot date falls in [from, to].
func (s *DashboardReadStore) CompletedStatsBetween(ctx context.Context, from, to time.Time) (int, float64, error) {
	var (
		count  int
		volume float64
	)
	err := s.db.QueryRow(ctx, `
		SELECT count(*), COALESCE(sum(r.requested_volume), 0)
		FROM reservations r
		JOIN loading_slots ls ON ls.id = r.slot_id
		WHERE r.status = 'completed' AND ls.date >= $1 AND ls.date <= $2`,
		from, to).Scan(&count, &volume)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to compute completed stats", err)
	}
	return count, volume, nil
}

func (s *DashboardReadStore) ScheduleOn(ctx context.Context, date time.Time) ([]*queries.TodayScheduleItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, ls.start_time, ls.end_time, st.name, c.name,
		       r.truck_license_plate, r.driver_name, r.requested_volume, r.status
		FROM reservations r
		JOIN loading_slots ls ON ls.id = r.slot_id
		JOIN stations st ON st.id = ls.station_id
		JOIN customers c ON c.id = r.customer_id
		WHERE ls.date = $1
		ORDER BY ls.start_time`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule", err)
	}
	defer rows.Close()

	items := make([]*queries.TodayScheduleItem, 0)
	for rows.Next() {
		var (
			item  queries.TodayScheduleItem
			start pgtype.Time
			end   pgtype.Time
		)
		if scanErr := rows.Scan(
			&item.ReservationID,
			&start,
			&end,
			&item.StationName,
			&item.CustomerName,
			&item.TruckLicensePlate,
			&item.DriverName,
			&item.RequestedVolume,
			&item.Status,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule item", scanErr)
		}
		item.SlotStartTime = formatTime(start)
		item.SlotEndTime = formatTime(end)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule", err)
	}
	return items, nil
}

// RecentActivity renders the latest reservations as an activity feed.
func (s *DashboardReadStore) RecentActivity(ctx context.Context, limit int32) ([]*queries.ActivityItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.status, c.name, r.truck_license_plate, r.created_at
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recent activity", err)
	}
	defer rows.Close()

	items := make([]*queries.ActivityItem, 0)
	for rows.Next() {
		var (
			item         queries.ActivityItem
			status       string
			customerName string
			plate        string
		)
		if scanErr := rows.Scan(&item.ID, &status, &customerName, &plate, &item.Timestamp); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan activity item", scanErr)
		}
		item.Type = "reservation_" + status
		item.Description = fmt.Sprintf("Reservation for %s - %s", customerName, plate)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load recent activity", err)
	}
	return items, nil
}
