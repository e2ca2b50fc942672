package bookings

import (
	"context"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTableAndDate(ctx context.Context, filter domain.TableBookingsFilter) ([]*domain.Booking, error)
	UpdateDiningStatus(ctx context.Context, id int64, status domain.DiningStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// AssignmentRepository интерфейс репозитория назначений столов
type AssignmentRepository interface {
	DeleteByBooking(ctx context.Context, bookingID int64) error
	GetTableIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
