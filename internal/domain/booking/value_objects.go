package booking

import (
	"errors"
	"time"

	"vehicle-booking/internal/pkg/clock"
)

var ErrEndBeforeStart = errors.New("end date must be on or after start date")

// DateRange is a closed calendar-day interval [start, end]. Both bounds are
// normalized to midnight UTC; a single-day booking has start == end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = clock.Truncate(start)
	end = clock.Truncate(end)
	if end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns the number of calendar days covered, inclusive.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// Overlaps reports whether two closed intervals share at least one day:
// [s1,e1] and [s2,e2] overlap iff s1 <= e2 && s2 <= e1.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// StartsBefore reports whether the range begins before the given date.
func (r DateRange) StartsBefore(date time.Time) bool {
	return r.start.Before(clock.Truncate(date))
}
