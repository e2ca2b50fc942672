package quick_seat

import (
	"context"

	quickSeat "github.com/m04kA/SMC-TableService/internal/usecase/quick_seat"
)

type QuickSeatUseCase interface {
	Execute(ctx context.Context, req *quickSeat.Request) (*quickSeat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
