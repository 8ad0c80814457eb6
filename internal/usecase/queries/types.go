package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models for the query side. Wire formatting happens in the handler
// response DTOs; dates and times are already rendered as "2006-01-02" and
// "15:04" strings by the read stores.

type StationView struct {
	ID                  uuid.UUID
	Name                string
	Location            string
	CapacityPerHour     float64
	OperatingHoursStart string
	OperatingHoursEnd   string
	IsActive            bool
}

type CustomerView struct {
	ID            uuid.UUID
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	ContractType  string
	CreatedAt     time.Time
}

// CustomerDetailView is a customer plus their reservation history.
type CustomerDetailView struct {
	CustomerView
	Reservations []*ReservationView
}

type SlotView struct {
	ID          uuid.UUID
	StationID   uuid.UUID
	StationName string
	Date        string
	StartTime   string
	EndTime     string
	MaxVolume   float64
	Status      string
}

type ReservationView struct {
	ID                uuid.UUID
	SlotID            uuid.UUID
	CustomerID        uuid.UUID
	CustomerName      string
	StationID         uuid.UUID
	StationName       string
	SlotDate          string
	SlotStartTime     string
	SlotEndTime       string
	TruckLicensePlate string
	DriverName        string
	RequestedVolume   float64
	Status            string
	Notes             *string
	CreatedAt         time.Time
}

type DashboardStats struct {
	TotalReservationsToday    int
	AvailableSlotsToday       int
	ActiveCustomers           int
	CompletedLoadingsThisWeek int
	TotalVolumeThisWeek       float64
}

type TodayScheduleItem struct {
	ReservationID     uuid.UUID
	SlotStartTime     string
	SlotEndTime       string
	StationName       string
	CustomerName      string
	TruckLicensePlate string
	DriverName        string
	RequestedVolume   float64
	Status            string
}

type ActivityItem struct {
	ID          uuid.UUID
	Type        string
	Description string
	Timestamp   time.Time
}

// Filters

type SlotFilter struct {
	StationID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Status    *string
	Limit     int32
	Offset    int32
}

type AvailableSlotFilter struct {
	StationID *uuid.UUID
	Date      *time.Time
	MinVolume *float64
}

type ReservationFilter struct {
	CustomerID *uuid.UUID
	StationID  *uuid.UUID
	Status     *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     *string
	Limit      int32
	Offset     int32
}
