package domain

import "github.com/m04kA/SMC-TableService/pkg/types"

// Slot represents a bookable start time generated from operating hours,
// annotated with remaining aggregate capacity
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool // Enough guest and table capacity left for the requested party
	RemainingGuests int
	RemainingTables int
}

// IsFull returns true if the slot has no table capacity left
func (s *Slot) IsFull() bool {
	return s.RemainingTables <= 0
}
