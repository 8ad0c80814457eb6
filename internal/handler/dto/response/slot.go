package response

import (
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	MaxVolume   float64   `json:"max_volume"`
	Status      string    `json:"status"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID,
		StationID:   v.StationID,
		StationName: v.StationName,
		Date:        v.Date,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		MaxVolume:   v.MaxVolume,
		Status:      v.Status,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	responses := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromSlotView(v))
	}
	return responses
}
