package extend_booking

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.NewEndTime.IsZero() {
		return fmt.Errorf("%w: newEndTime is required", ErrInvalidInput)
	}
	if err := req.NewEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newEndTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
