package response

import (
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	CapacityPerHour     float64   `json:"capacity_per_hour"`
	OperatingHoursStart string    `json:"operating_hours_start"`
	OperatingHoursEnd   string    `json:"operating_hours_end"`
	IsActive            bool      `json:"is_active"`
}

func FromStationView(v *queries.StationView) *StationResponse {
	return &StationResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Location:            v.Location,
		CapacityPerHour:     v.CapacityPerHour,
		OperatingHoursStart: v.OperatingHoursStart,
		OperatingHoursEnd:   v.OperatingHoursEnd,
		IsActive:            v.IsActive,
	}
}

func FromStationViews(views []*queries.StationView) []*StationResponse {
	responses := make([]*StationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromStationView(v))
	}
	return responses
}
