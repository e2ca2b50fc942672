package get_available_tables

import (
	"context"

	"github.com/m04kA/SMC-TableService/internal/service/availability"
)

type AvailabilityService interface {
	GetAvailableTables(ctx context.Context, req *availability.GetAvailableTablesRequest) (*availability.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
