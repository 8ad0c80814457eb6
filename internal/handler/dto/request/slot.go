package request

import (
	"time"

	"lng-loading/internal/domain/slot"
	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateSlotRequest struct {
	StationID uuid.UUID `json:"station_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
	MaxVolume float64   `json:"max_volume" binding:"required,gt=0"`
}

func (r CreateSlotRequest) ToDomain(st *station.Station) (*slot.Slot, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	start, err := timeofday.Parse(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := timeofday.Parse(r.EndTime)
	if err != nil {
		return nil, err
	}
	return slot.NewSlot(st, date, start, end, r.MaxVolume)
}

type UpdateSlotRequest struct {
	Date      *string  `json:"date,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	MaxVolume *float64 `json:"max_volume,omitempty" binding:"omitempty,gt=0"`
	Status    *string  `json:"status,omitempty" binding:"omitempty,oneof=available cancelled"`
}

// Reschedules reports whether the patch touches the slot window or capacity.
func (r UpdateSlotRequest) Reschedules() bool {
	return r.Date != nil || r.StartTime != nil || r.EndTime != nil || r.MaxVolume != nil
}

// Apply merges the window patch into the current slot state and revalidates
// it against the owning station. Status changes are handled separately.
func (r UpdateSlotRequest) Apply(s *slot.Slot, st *station.Station) error {
	date := s.Date()
	if r.Date != nil {
		parsed, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return err
		}
		date = parsed
	}
	start := s.Start()
	if r.StartTime != nil {
		parsed, err := timeofday.Parse(*r.StartTime)
		if err != nil {
			return err
		}
		start = parsed
	}
	end := s.End()
	if r.EndTime != nil {
		parsed, err := timeofday.Parse(*r.EndTime)
		if err != nil {
			return err
		}
		end = parsed
	}
	maxVolume := s.MaxVolume()
	if r.MaxVolume != nil {
		maxVolume = *r.MaxVolume
	}
	return s.Reschedule(st, date, start, end, maxVolume)
}
