//go:build unit || e2e

package builder

import (
	domstation "lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
	reqdto "lng-loading/internal/handler/dto/request"
	"lng-loading/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationBuilder struct {
	Name                string
	Location            string
	CapacityPerHour     float64
	OperatingHoursStart string
	OperatingHoursEnd   string
	IsActive            bool
}

func NewStationBuilder() *StationBuilder {
	return &StationBuilder{
		Name:                "Zeebrugge Terminal",
		Location:            "Zeebrugge, Belgium",
		CapacityPerHour:     150,
		OperatingHoursStart: "06:00",
		OperatingHoursEnd:   "22:00",
		IsActive:            true,
	}
}

func (b *StationBuilder) With(mutate func(*StationBuilder)) *StationBuilder {
	mutate(b)
	return b
}

func (b *StationBuilder) BuildDomain() (*domstation.Station, error) {
	start, err := timeofday.Parse(b.OperatingHoursStart)
	if err != nil {
		return nil, err
	}
	end, err := timeofday.Parse(b.OperatingHoursEnd)
	if err != nil {
		return nil, err
	}
	hours, err := domstation.NewOperatingHours(start, end)
	if err != nil {
		return nil, err
	}
	return domstation.NewStation(b.Name, b.Location, b.CapacityPerHour, hours, b.IsActive)
}

func (b *StationBuilder) BuildCreateRequestDTO() reqdto.CreateStationRequest {
	isActive := b.IsActive
	return reqdto.CreateStationRequest{
		Name:                b.Name,
		Location:            b.Location,
		CapacityPerHour:     b.CapacityPerHour,
		OperatingHoursStart: b.OperatingHoursStart,
		OperatingHoursEnd:   b.OperatingHoursEnd,
		IsActive:            &isActive,
	}
}

func (b *StationBuilder) BuildView() *queries.StationView {
	return &queries.StationView{
		ID:                  uuid.New(),
		Name:                b.Name,
		Location:            b.Location,
		CapacityPerHour:     b.CapacityPerHour,
		OperatingHoursStart: b.OperatingHoursStart,
		OperatingHoursEnd:   b.OperatingHoursEnd,
		IsActive:            b.IsActive,
	}
}
