package reqdto

import (
	"time"

	"vehicle-booking/internal/domain/booking"
)

type CreateBookingRequest struct {
	VehicleID int64  `json:"vehicle_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ToDateRange parses the wire dates (YYYY-MM-DD) into a validated range.
func (r CreateBookingRequest) ToDateRange() (booking.DateRange, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(start, end)
}
