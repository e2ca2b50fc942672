package domain

import (
	"time"

	"github.com/m04kA/SMC-TableService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusNew       BookingStatus = "new"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// DiningStatus tracks the physical seating progress of a booking,
// as distinct from its lifecycle status
type DiningStatus string

const (
	DiningPending   DiningStatus = "pending"
	DiningReserved  DiningStatus = "reserved"
	DiningSeated    DiningStatus = "seated"
	DiningCompleted DiningStatus = "completed"
	DiningCancelled DiningStatus = "cancelled"
	DiningNoShow    DiningStatus = "no_show"
)

// Booking represents a table reservation
type Booking struct {
	ID           int64
	CustomerName string
	GuestCount   int
	BookingDate  time.Time
	StartTime    types.TimeString
	// EndTime absent means the booking occupies start + default duration
	EndTime      *types.TimeString
	Status       BookingStatus
	DiningStatus DiningStatus

	// PrimaryTableID is derived from the assignment relation (first assigned
	// table); it is never written independently
	PrimaryTableID *int64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in overlap checks.
// Cancelled and no-show bookings release their tables without being deleted.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusNew || b.Status == StatusConfirmed
}

// EffectiveEnd returns the booking's end time, defaulting to
// start + defaultMinutes when no explicit end is stored.
// Ends past midnight wrap to the next day ("23:00" + 120 = "01:00").
// A stored end equal to the start is useless and falls back to the default.
func (b *Booking) EffectiveEnd(defaultMinutes int) types.TimeString {
	if b.EndTime != nil && !b.EndTime.IsZero() && !b.EndTime.Equal(b.StartTime) {
		return *b.EndTime
	}
	return types.FromMinutes(b.StartTime.Minutes() + defaultMinutes)
}

// CoversTime returns true if the moment falls within the booking's
// effective interval [start, end). An end past midnight keeps covering
// the late evening of the booking's own day.
func (b *Booking) CoversTime(t types.TimeString, defaultMinutes int) bool {
	start, end := intervalMinutes(b.StartTime, b.EffectiveEnd(defaultMinutes))
	m := t.Minutes()
	return start <= m && m < end
}

// EndsAfter returns true if the booking's effective interval is still
// running (or ahead) at the given moment of its own day
func (b *Booking) EndsAfter(t types.TimeString, defaultMinutes int) bool {
	_, end := intervalMinutes(b.StartTime, b.EffectiveEnd(defaultMinutes))
	return t.Minutes() < end
}

// TableBooking пара "стол - бронирование" из связи назначений
// Одно бронирование на несколько столов встречается в выборке несколько раз
type TableBooking struct {
	TableID int64
	Booking *Booking
}

// TableBookingsFilter фильтр для выборки бронирований стола
type TableBookingsFilter struct {
	TableID         int64
	Date            time.Time
	IncludeInactive bool // Включать ли отмененные и no-show бронирования
}
