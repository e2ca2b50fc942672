package domain

import "github.com/m04kA/SMC-TableService/pkg/types"

// ConflictInfo describes an existing booking that collides with a
// candidate interval on a table. It carries enough detail for a
// human-facing message ("table is booked by X from 10:00 to 12:00").
type ConflictInfo struct {
	BookingID    int64
	TableID      int64
	CustomerName string
	StartTime    types.TimeString
	EndTime      types.TimeString
}

const minutesPerDay = 24 * 60

// intervalMinutes converts [start, end) to minute offsets from midnight.
// An end below its start has wrapped past midnight and extends into the
// next day ("23:30"-"01:30" becomes [1410, 1530)).
func intervalMinutes(start, end types.TimeString) (int, int) {
	s := start.Minutes()
	e := end.Minutes()
	if e < s {
		e += minutesPerDay
	}
	return s, e
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Back-to-back intervals (one ends exactly when
// the other starts) do NOT overlap, so back-to-back seating is allowed.
// Ends that wrapped past midnight keep covering the late evening; the
// spill into the next calendar day is outside that day's comparisons.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	aS, aE := intervalMinutes(aStart, aEnd)
	bS, bE := intervalMinutes(bStart, bEnd)
	return aS < bE && bS < aE
}

// FindConflict returns the first active booking whose effective interval
// overlaps [start, end), or nil if the interval is free.
// excludeBookingID skips a booking's own record when re-validating its
// interval during edit or extend flows.
func FindConflict(bookings []*Booking, start, end types.TimeString, excludeBookingID *int64, defaultMinutes int) *Booking {
	for _, booking := range bookings {
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if Overlaps(start, end, booking.StartTime, booking.EffectiveEnd(defaultMinutes)) {
			return booking
		}
	}
	return nil
}

// NewConflictInfo builds conflict detail for the given table from a
// colliding booking
func NewConflictInfo(tableID int64, booking *Booking, defaultMinutes int) *ConflictInfo {
	return &ConflictInfo{
		BookingID:    booking.ID,
		TableID:      tableID,
		CustomerName: booking.CustomerName,
		StartTime:    booking.StartTime,
		EndTime:      booking.EffectiveEnd(defaultMinutes),
	}
}
