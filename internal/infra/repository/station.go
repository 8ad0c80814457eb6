package repository

import (
	"context"

	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	"lng-loading/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StationRepository struct{}

func NewStationRepository() *StationRepository {
	return &StationRepository{}
}

func (r *StationRepository) Create(ctx context.Context, db infra.DBTX, st *station.Station) error {
	_, err := db.Exec(ctx, `
		INSERT INTO stations (id, name, location, capacity_per_hour, operating_hours_start, operating_hours_end, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		st.ID(),
		st.Name(),
		st.Location(),
		st.CapacityPerHour(),
		timeToPg(st.OperatingHours().Start()),
		timeToPg(st.OperatingHours().End()),
		st.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create station", err)
	}
	return nil
}

func (r *StationRepository) Update(ctx context.Context, db infra.DBTX, st *station.Station) error {
	tag, err := db.Exec(ctx, `
		UPDATE stations
		SET name = $2, location = $3, capacity_per_hour = $4,
		    operating_hours_start = $5, operating_hours_end = $6, is_active = $7
		WHERE id = $1`,
		st.ID(),
		st.Name(),
		st.Location(),
		st.CapacityPerHour(),
		timeToPg(st.OperatingHours().Start()),
		timeToPg(st.OperatingHours().End()),
		st.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update station", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "station not found")
	}
	return nil
}

func (r *StationRepository) FindByID(ctx context.Context, db infra.DBTX, id uuid.UUID) (*station.Station, error) {
	var (
		stationID       uuid.UUID
		name            string
		location        string
		capacityPerHour float64
		start           pgtype.Time
		end             pgtype.Time
		isActive        bool
	)
	err := db.QueryRow(ctx, `
		SELECT id, name, location, capacity_per_hour, operating_hours_start, operating_hours_end, is_active
		FROM stations
		WHERE id = $1`, id).Scan(&stationID, &name, &location, &capacityPerHour, &start, &end, &isActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get station", err)
	}

	hours, err := station.NewOperatingHours(
		timeofday.FromMicroseconds(start.Microseconds),
		timeofday.FromMicroseconds(end.Microseconds),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid operating hours in storage", err)
	}
	return station.ReconstructStation(stationID, name, location, capacityPerHour, hours, isActive), nil
}

func timeToPg(t timeofday.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}
