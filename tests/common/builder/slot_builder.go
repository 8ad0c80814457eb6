//go:build unit || e2e

package builder

import (
	"time"

	domslot "lng-loading/internal/domain/slot"
	domstation "lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	StationID uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	MaxVolume float64
	Status    string
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		StationID: uuid.New(),
		Date:      "2024-06-01",
		StartTime: "08:00",
		EndTime:   "10:00",
		MaxVolume: 50,
		Status:    "available",
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// BuildDomain validates the window against the given station's hours.
func (b *SlotBuilder) BuildDomain(st *domstation.Station) (*domslot.Slot, error) {
	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return nil, err
	}
	start, err := timeofday.Parse(b.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := timeofday.Parse(b.EndTime)
	if err != nil {
		return nil, err
	}
	return domslot.NewSlot(st, date, start, end, b.MaxVolume)
}

// BuildReconstructed skips validation and honors the builder's status.
func (b *SlotBuilder) BuildReconstructed() *domslot.Slot {
	date, _ := time.Parse("2006-01-02", b.Date)
	start, _ := timeofday.Parse(b.StartTime)
	end, _ := timeofday.Parse(b.EndTime)
	return domslot.ReconstructSlot(
		uuid.New(), b.StationID, date,
		start, end, b.MaxVolume,
		domslot.Status(b.Status),
	)
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		StationID: b.StationID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		MaxVolume: b.MaxVolume,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          uuid.New(),
		StationID:   b.StationID,
		StationName: "Zeebrugge Terminal",
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		MaxVolume:   b.MaxVolume,
		Status:      b.Status,
	}
}
