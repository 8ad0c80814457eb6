package response

import (
	"time"

	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardStatsResponse struct {
	TotalReservationsToday    int     `json:"total_reservations_today"`
	AvailableSlotsToday       int     `json:"available_slots_today"`
	ActiveCustomers           int     `json:"active_customers"`
	CompletedLoadingsThisWeek int     `json:"completed_loadings_this_week"`
	TotalVolumeThisWeek       float64 `json:"total_volume_this_week"`
}

type TodayScheduleItemResponse struct {
	ReservationID     uuid.UUID `json:"reservation_id"`
	SlotStartTime     string    `json:"slot_start_time"`
	SlotEndTime       string    `json:"slot_end_time"`
	StationName       string    `json:"station_name"`
	CustomerName      string    `json:"customer_name"`
	TruckLicensePlate string    `json:"truck_license_plate"`
	DriverName        string    `json:"driver_name"`
	RequestedVolume   float64   `json:"requested_volume"`
	Status            string    `json:"status"`
}

type ActivityItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func FromDashboardStats(v *queries.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalReservationsToday:    v.TotalReservationsToday,
		AvailableSlotsToday:       v.AvailableSlotsToday,
		ActiveCustomers:           v.ActiveCustomers,
		CompletedLoadingsThisWeek: v.CompletedLoadingsThisWeek,
		TotalVolumeThisWeek:       v.TotalVolumeThisWeek,
	}
}

func FromTodaySchedule(items []*queries.TodayScheduleItem) []*TodayScheduleItemResponse {
	responses := make([]*TodayScheduleItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &TodayScheduleItemResponse{
			ReservationID:     item.ReservationID,
			SlotStartTime:     item.SlotStartTime,
			SlotEndTime:       item.SlotEndTime,
			StationName:       item.StationName,
			CustomerName:      item.CustomerName,
			TruckLicensePlate: item.TruckLicensePlate,
			DriverName:        item.DriverName,
			RequestedVolume:   item.RequestedVolume,
			Status:            item.Status,
		})
	}
	return responses
}

func FromActivityItems(items []*queries.ActivityItem) []*ActivityItemResponse {
	responses := make([]*ActivityItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &ActivityItemResponse{
			ID:          item.ID,
			Type:        item.Type,
			Description: item.Description,
			Timestamp:   item.Timestamp,
		})
	}
	return responses
}
