package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context, filter domain.TableFilter) ([]*domain.Table, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTableAndDate(ctx context.Context, filter domain.TableBookingsFilter) ([]*domain.Booking, error)
	GetAssignedByDate(ctx context.Context, date time.Time) ([]*domain.TableBooking, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
