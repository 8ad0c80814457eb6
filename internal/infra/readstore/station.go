package readstore

import (
	"context"

	"lng-loading/internal/infra"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StationReadStore struct {
	db infra.DBTX
}

func NewStationReadStore(db infra.DBTX) *StationReadStore {
	return &StationReadStore{db: db}
}

const stationViewColumns = `id, name, location, capacity_per_hour, operating_hours_start, operating_hours_end, is_active`

func (s *StationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StationView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+stationViewColumns+`
		FROM stations
		WHERE id = $1`, id)

	view, err := scanStationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get station", err)
	}
	return view, nil
}

func (s *StationReadStore) List(ctx context.Context, isActive *bool, limit, offset int32) ([]*queries.StationView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+stationViewColumns+`
		FROM stations
		WHERE $1::boolean IS NULL OR is_active = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`, isActive, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stations", err)
	}
	defer rows.Close()

	views := make([]*queries.StationView, 0)
	for rows.Next() {
		view, scanErr := scanStationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan station", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list stations", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStationView(row rowScanner) (*queries.StationView, error) {
	var (
		view  queries.StationView
		start pgtype.Time
		end   pgtype.Time
	)
	if err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Location,
		&view.CapacityPerHour,
		&start,
		&end,
		&view.IsActive,
	); err != nil {
		return nil, err
	}
	view.OperatingHoursStart = formatTime(start)
	view.OperatingHoursEnd = formatTime(end)
	return &view, nil
}
