package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GuestCount < 0 || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between 0 and %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	return nil
}
