package domain

import (
	"time"

	"github.com/m04kA/SMC-TableService/pkg/types"
)

// FutureDayPolicy controls how availability is computed for days after today
type FutureDayPolicy string

const (
	// FuturePolicyOptimistic lists a table with future bookings as free as
	// long as the day is not over: gaps between bookings are assumed to exist
	FuturePolicyOptimistic FutureDayPolicy = "optimistic"

	// FuturePolicyStrict applies the same interval-occupancy check used for
	// today to every future day: a table is free only if no booking overlaps
	// the requested interval
	FuturePolicyStrict FutureDayPolicy = "strict"
)

// IsValid returns true if the policy is one of the known values
func (p FutureDayPolicy) IsValid() bool {
	return p == FuturePolicyOptimistic || p == FuturePolicyStrict
}

// ScheduleConfig represents the restaurant-wide booking configuration
type ScheduleConfig struct {
	ID                     int64
	SlotDurationMinutes    int
	DefaultDurationMinutes int // Effective booking length when no end time is stored
	MaxGuestsPerSlot       int // Aggregate guest ceiling per generated slot
	MaxTablesPerSlot       int // Aggregate booking ceiling per generated slot
	FutureDayPolicy        FutureDayPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServicePeriod a continuous stretch of operating hours (e.g. lunch service)
type ServicePeriod struct {
	Open  types.TimeString
	Close types.TimeString
}

// DayHours operating hours of the restaurant for one weekday.
// A day has a lunch period and an optional separate dinner period;
// a closed day yields no bookable slots at all.
type DayHours struct {
	Weekday    time.Weekday
	IsClosed   bool
	LunchOpen  *types.TimeString
	LunchClose *types.TimeString
	DinnerOpen  *types.TimeString
	DinnerClose *types.TimeString
}

// Periods returns the configured service periods of the day in order
func (d *DayHours) Periods() []ServicePeriod {
	if d.IsClosed {
		return nil
	}

	periods := make([]ServicePeriod, 0, 2)
	if d.LunchOpen != nil && d.LunchClose != nil {
		periods = append(periods, ServicePeriod{Open: *d.LunchOpen, Close: *d.LunchClose})
	}
	if d.DinnerOpen != nil && d.DinnerClose != nil {
		periods = append(periods, ServicePeriod{Open: *d.DinnerOpen, Close: *d.DinnerClose})
	}
	return periods
}

// HoursForDay returns the operating hours for the given weekday.
// A weekday with no configured row is treated as closed.
func HoursForDay(hours []DayHours, weekday time.Weekday) DayHours {
	for _, day := range hours {
		if day.Weekday == weekday {
			return day
		}
	}
	return DayHours{Weekday: weekday, IsClosed: true}
}
