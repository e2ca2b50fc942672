package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes    = 30
	DefaultBookingDurationMinutes = 120
	DefaultMaxGuestsPerSlot       = 40
	DefaultMaxTablesPerSlot       = 10
	DefaultFutureDayPolicy        = FuturePolicyOptimistic
)

// Walk-in quick-seat defaults
const (
	QuickSeatGuestCount       = 2
	QuickSeatDurationMinutes  = 120
	QuickSeatRoundingMinutes  = 15 // Start time is rounded down to the nearest quarter hour
)

// Business validation constants
const (
	MinSlotDurationMinutes    = 15
	MaxSlotDurationMinutes    = 240
	MinBookingDurationMinutes = 15
	MaxBookingDurationMinutes = 480
	MinGuestsPerSlot          = 1
	MaxGuestsPerSlot          = 500
	MinTablesPerSlot          = 1
	MaxTablesPerSlot          = 100
	MaxGuestCount             = 50
	MaxCustomerNameLength     = 200
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, исключаемых из всех проверок пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, участвующих в проверках пересечений
var ActiveStatuses = []BookingStatus{
	StatusNew,
	StatusConfirmed,
	StatusCompleted,
}
