package request

import (
	"strings"

	"lng-loading/internal/domain/reservation"
	"lng-loading/internal/domain/slot"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SlotID            uuid.UUID `json:"slot_id" binding:"required"`
	CustomerID        uuid.UUID `json:"customer_id" binding:"required"`
	TruckLicensePlate string    `json:"truck_license_plate" binding:"required,max=20"`
	DriverName        string    `json:"driver_name" binding:"required,max=255"`
	RequestedVolume   float64   `json:"requested_volume" binding:"required,gt=0"`
	Notes             *string   `json:"notes,omitempty"`
}

func (r CreateReservationRequest) GetNotes() *string {
	if r.Notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateReservationRequest) ToDomain(s *slot.Slot) (*reservation.Reservation, error) {
	return reservation.NewReservation(
		s,
		r.CustomerID,
		r.TruckLicensePlate,
		r.DriverName,
		r.RequestedVolume,
		r.GetNotes(),
	)
}

type UpdateReservationRequest struct {
	TruckLicensePlate *string  `json:"truck_license_plate,omitempty" binding:"omitempty,min=1,max=20"`
	DriverName        *string  `json:"driver_name,omitempty" binding:"omitempty,min=1,max=255"`
	RequestedVolume   *float64 `json:"requested_volume,omitempty" binding:"omitempty,gt=0"`
	Status            *string  `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	Notes             *string  `json:"notes,omitempty"`
}
