package quick_seat

import (
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.GuestCount < 0 || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between 0 and %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBookingDurationMinutes)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
