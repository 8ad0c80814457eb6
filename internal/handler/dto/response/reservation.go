package response

import (
	"time"

	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	SlotID            uuid.UUID `json:"slot_id"`
	CustomerID        uuid.UUID `json:"customer_id"`
	CustomerName      string    `json:"customer_name"`
	StationID         uuid.UUID `json:"station_id"`
	StationName       string    `json:"station_name"`
	SlotDate          string    `json:"slot_date"`
	SlotStartTime     string    `json:"slot_start_time"`
	SlotEndTime       string    `json:"slot_end_time"`
	TruckLicensePlate string    `json:"truck_license_plate"`
	DriverName        string    `json:"driver_name"`
	RequestedVolume   float64   `json:"requested_volume"`
	Status            string    `json:"status"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                v.ID,
		SlotID:            v.SlotID,
		CustomerID:        v.CustomerID,
		CustomerName:      v.CustomerName,
		StationID:         v.StationID,
		StationName:       v.StationName,
		SlotDate:          v.SlotDate,
		SlotStartTime:     v.SlotStartTime,
		SlotEndTime:       v.SlotEndTime,
		TruckLicensePlate: v.TruckLicensePlate,
		DriverName:        v.DriverName,
		RequestedVolume:   v.RequestedVolume,
		Status:            v.Status,
		Notes:             v.Notes,
		CreatedAt:         v.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	responses := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromReservationView(v))
	}
	return responses
}
