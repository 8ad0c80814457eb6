//go:build unit || e2e

package builder

import (
	"time"

	domreservation "lng-loading/internal/domain/reservation"
	domslot "lng-loading/internal/domain/slot"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	SlotID            uuid.UUID
	CustomerID        uuid.UUID
	TruckLicensePlate string
	DriverName        string
	RequestedVolume   float64
	Status            string
	Notes             *string
	CreatedAt         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		SlotID:            uuid.New(),
		CustomerID:        uuid.New(),
		TruckLicensePlate: "1-ABC-123",
		DriverName:        "Marc Janssens",
		RequestedVolume:   40,
		Status:            "pending",
		CreatedAt:         time.Now(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// BuildDomain books the given slot; the slot must be bookable.
func (b *ReservationBuilder) BuildDomain(s *domslot.Slot) (*domreservation.Reservation, error) {
	return domreservation.NewReservation(
		s,
		b.CustomerID,
		b.TruckLicensePlate,
		b.DriverName,
		b.RequestedVolume,
		b.Notes,
	)
}

// BuildReconstructed skips validation and honors the builder's status.
func (b *ReservationBuilder) BuildReconstructed() *domreservation.Reservation {
	return domreservation.ReconstructReservation(
		uuid.New(), b.SlotID, b.CustomerID,
		b.TruckLicensePlate, b.DriverName, b.RequestedVolume,
		domreservation.Status(b.Status),
		b.Notes,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SlotID:            b.SlotID,
		CustomerID:        b.CustomerID,
		TruckLicensePlate: b.TruckLicensePlate,
		DriverName:        b.DriverName,
		RequestedVolume:   b.RequestedVolume,
		Notes:             b.Notes,
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	plate := b.TruckLicensePlate
	driver := b.DriverName
	volume := b.RequestedVolume
	status := b.Status
	return reqdto.UpdateReservationRequest{
		TruckLicensePlate: &plate,
		DriverName:        &driver,
		RequestedVolume:   &volume,
		Status:            &status,
		Notes:             b.Notes,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                uuid.New(),
		SlotID:            b.SlotID,
		CustomerID:        b.CustomerID,
		CustomerName:      "Acme Logistics",
		StationID:         uuid.New(),
		StationName:       "Zeebrugge Terminal",
		SlotDate:          "2024-06-01",
		SlotStartTime:     "08:00",
		SlotEndTime:       "10:00",
		TruckLicensePlate: b.TruckLicensePlate,
		DriverName:        b.DriverName,
		RequestedVolume:   b.RequestedVolume,
		Status:            b.Status,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
	}
}
