package extend_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrBookingInactive возвращается при попытке продлить отменённое или завершённое бронирование
	ErrBookingInactive = errors.New("extend_booking: booking is not active")

	// ErrTableNotAssigned возвращается, когда указанный стол не назначен бронированию
	ErrTableNotAssigned = errors.New("extend_booking: table is not assigned to this booking")

	// ErrTableConflict возвращается, когда продлённый интервал пересекается с чужим бронированием
	ErrTableConflict = errors.New("extend_booking: table is booked for the extended interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)

// ConflictError несёт детали бронирования, блокирующего продление
type ConflictError struct {
	Conflict *domain.ConflictInfo
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: table=%d is booked by %q from %s to %s",
		ErrTableConflict, e.Conflict.TableID, e.Conflict.CustomerName,
		e.Conflict.StartTime, e.Conflict.EndTime)
}

// Unwrap позволяет обрабатывать ConflictError через errors.Is(err, ErrTableConflict)
func (e *ConflictError) Unwrap() error {
	return ErrTableConflict
}
