package request

import (
	"lng-loading/internal/domain/station"
	"lng-loading/internal/domain/timeofday"
)

type CreateStationRequest struct {
	Name                string  `json:"name" binding:"required,max=255"`
	Location            string  `json:"location" binding:"required,max=500"`
	CapacityPerHour     float64 `json:"capacity_per_hour" binding:"required,gt=0"`
	OperatingHoursStart string  `json:"operating_hours_start" binding:"required"`
	OperatingHoursEnd   string  `json:"operating_hours_end" binding:"required"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

// Active defaults new stations to active when the flag is omitted.
func (r CreateStationRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func (r CreateStationRequest) ToDomain() (*station.Station, error) {
	hours, err := parseOperatingHours(r.OperatingHoursStart, r.OperatingHoursEnd)
	if err != nil {
		return nil, err
	}
	return station.NewStation(r.Name, r.Location, r.CapacityPerHour, hours, r.Active())
}

type UpdateStationRequest struct {
	Name                *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Location            *string  `json:"location,omitempty" binding:"omitempty,min=1,max=500"`
	CapacityPerHour     *float64 `json:"capacity_per_hour,omitempty" binding:"omitempty,gt=0"`
	OperatingHoursStart *string  `json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string  `json:"operating_hours_end,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// Apply merges the patch into the current entity state and revalidates it.
func (r UpdateStationRequest) Apply(st *station.Station) error {
	name := st.Name()
	if r.Name != nil {
		name = *r.Name
	}
	location := st.Location()
	if r.Location != nil {
		location = *r.Location
	}
	capacity := st.CapacityPerHour()
	if r.CapacityPerHour != nil {
		capacity = *r.CapacityPerHour
	}
	isActive := st.IsActive()
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	hours := st.OperatingHours()
	if r.OperatingHoursStart != nil || r.OperatingHoursEnd != nil {
		start := hours.Start()
		end := hours.End()
		var err error
		if r.OperatingHoursStart != nil {
			if start, err = timeofday.Parse(*r.OperatingHoursStart); err != nil {
				return err
			}
		}
		if r.OperatingHoursEnd != nil {
			if end, err = timeofday.Parse(*r.OperatingHoursEnd); err != nil {
				return err
			}
		}
		if hours, err = station.NewOperatingHours(start, end); err != nil {
			return err
		}
	}

	return st.Update(name, location, capacity, hours, isActive)
}

func parseOperatingHours(startStr, endStr string) (station.OperatingHours, error) {
	start, err := timeofday.Parse(startStr)
	if err != nil {
		return station.OperatingHours{}, err
	}
	end, err := timeofday.Parse(endStr)
	if err != nil {
		return station.OperatingHours{}, err
	}
	return station.NewOperatingHours(start, end)
}
