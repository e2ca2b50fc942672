package schedule

import (
	"context"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
	UpsertConfig(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetOperatingHours(ctx context.Context) ([]domain.DayHours, error)
	UpsertOperatingHours(ctx context.Context, day domain.DayHours) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
