package get_table_conflict

import (
	"context"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/availability"
)

type AvailabilityService interface {
	GetConflict(ctx context.Context, req *availability.GetConflictRequest) (*domain.ConflictInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
