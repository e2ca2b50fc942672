package assign_tables

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("assign_tables: booking not found")

	// ErrTableNotFound возвращается, когда один из запрошенных столов не найден
	ErrTableNotFound = errors.New("assign_tables: table not found")

	// ErrTableInactive возвращается, когда один из запрошенных столов выведен из оборота
	ErrTableInactive = errors.New("assign_tables: table is inactive")

	// ErrTableConflict возвращается, когда интервал пересекается с чужим бронированием
	// Назначение отклоняется целиком: частичная запись набора столов не выполняется
	ErrTableConflict = errors.New("assign_tables: table already booked for this interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_tables: internal error")
)

// ConflictError несёт детали конфликтующего бронирования для человекочитаемого
// сообщения ("стол занят гостем X с 10:00 до 12:00")
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
