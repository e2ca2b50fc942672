package assign_tables

import (
	"context"

	assignTables "github.com/m04kA/SMC-TableService/internal/usecase/assign_tables"
)

type AssignTablesUseCase interface {
	Execute(ctx context.Context, req *assignTables.Request) (*assignTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
