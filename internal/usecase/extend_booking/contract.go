package extend_booking

import (
	"context"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTableAndDate(ctx context.Context, filter domain.TableBookingsFilter) ([]*domain.Booking, error)
	UpdateEndTime(ctx context.Context, id int64, endTime types.TimeString) error
}

// AssignmentRepository интерфейс репозитория назначений столов
type AssignmentRepository interface {
	GetTableIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
