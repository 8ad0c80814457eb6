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

type SlotReadStore struct {
	db infra.DBTX
}

func NewSlotReadStore(db infra.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

const slotViewSelect = `
	SELECT ls.id, ls.station_id, st.name, ls.date, ls.start_time, ls.end_time, ls.max_volume, ls.status
	FROM loading_slots ls
	JOIN stations st ON st.id = ls.station_id`

func (s *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := s.db.QueryRow(ctx, slotViewSelect+`
		WHERE ls.id = $1`, id)

	view, err := scanSlotView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get slot", err)
	}
	return view, nil
}

func (s *SlotReadStore) List(ctx context.Context, filter queries.SlotFilter) ([]*queries.SlotView, error) {
	rows, err := s.db.Query(ctx, slotViewSelect+`
		WHERE ($1::uuid IS NULL OR ls.station_id = $1)
		  AND ($2::date IS NULL OR ls.date >= $2)
		  AND ($3::date IS NULL OR ls.date <= $3)
		  AND ($4::varchar IS NULL OR ls.status = $4)
		ORDER BY ls.date, ls.start_time
		LIMIT $5 OFFSET $6`,
		pgconv.UUIDPtrToPgtype(filter.StationID),
		filter.DateFrom,
		filter.DateTo,
		filter.Status,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

// ListAvailable returns bookable slots, optionally narrowed by station,
// exact date and minimum capacity.
func (s *SlotReadStore) ListAvailable(ctx context.Context, filter queries.AvailableSlotFilter) ([]*queries.SlotView, error) {
	rows, err := s.db.Query(ctx, slotViewSelect+`
		WHERE ls.status = 'available'
		  AND ($1::uuid IS NULL OR ls.station_id = $1)
		  AND ($2::date IS NULL OR ls.date = $2)
		  AND ($3::float8 IS NULL OR ls.max_volume >= $3)
		ORDER BY ls.date, ls.start_time`,
		pgconv.UUIDPtrToPgtype(filter.StationID),
		filter.Date,
		filter.MinVolume,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	return views, nil
}

func scanSlotView(row rowScanner) (*queries.SlotView, error) {
	var (
		view  queries.SlotView
		date  pgtype.Date
		start pgtype.Time
		end   pgtype.Time
	)
	if err := row.Scan(
		&view.ID,
		&view.StationID,
		&view.StationName,
		&date,
		&start,
		&end,
		&view.MaxVolume,
		&view.Status,
	); err != nil {
		return nil, err
	}
	view.Date = formatDate(date)
	view.StartTime = formatTime(start)
	view.EndTime = formatTime(end)
	return &view, nil
}
