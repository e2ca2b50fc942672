package get_table_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableService/internal/service/bookings/models"
)

type BookingService interface {
	GetTableBookings(ctx context.Context, tableID int64, date time.Time, includeInactive bool) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
