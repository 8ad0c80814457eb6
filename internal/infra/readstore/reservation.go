package readstore

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/pkg/pgconv"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewSelect = `
	SELECT r.id, r.slot_id, r.customer_id, c.name, ls.station_id, st.name,
	       ls.date, ls.start_time, ls.end_time,
	       r.truck_license_plate, r.driver_name, r.requested_volume, r.status, r.notes, r.created_at
	FROM reservations r
	JOIN loading_slots ls ON ls.id = r.slot_id
	JOIN stations st ON st.id = ls.station_id
	JOIN customers c ON c.id = r.customer_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSelect+`
		WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSelect+`
		WHERE ($1::uuid IS NULL OR r.customer_id = $1)
		  AND ($2::uuid IS NULL OR ls.station_id = $2)
		  AND ($3::varchar IS NULL OR r.status = $3)
		  AND ($4::date IS NULL OR ls.date >= $4)
		  AND ($5::date IS NULL OR ls.date <= $5)
		  AND ($6::varchar IS NULL
		       OR r.truck_license_plate ILIKE '%' || $6 || '%'
		       OR r.driver_name ILIKE '%' || $6 || '%')
		ORDER BY ls.date DESC, ls.start_time DESC
		LIMIT $7 OFFSET $8`,
		pgconv.UUIDPtrToPgtype(filter.CustomerID),
		pgconv.UUIDPtrToPgtype(filter.StationID),
		filter.Status,
		filter.DateFrom,
		filter.DateTo,
		filter.Search,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func (s *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewSelect+`
		WHERE r.customer_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`, customerID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer reservations", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view  queries.ReservationView
		date  pgtype.Date
		start pgtype.Time
		end   pgtype.Time
		notes pgtype.Text
	)
	if err := row.Scan(
		&view.ID,
		&view.SlotID,
		&view.CustomerID,
		&view.CustomerName,
		&view.StationID,
		&view.StationName,
		&date,
		&start,
		&end,
		&view.TruckLicensePlate,
		&view.DriverName,
		&view.RequestedVolume,
		&view.Status,
		&notes,
		&view.CreatedAt,
	); err != nil {
		return nil, err
	}
	view.SlotDate = formatDate(date)
	view.SlotStartTime = formatTime(start)
	view.SlotEndTime = formatTime(end)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	return &view, nil
}
