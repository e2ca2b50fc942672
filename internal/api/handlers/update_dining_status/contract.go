package update_dining_status

import "context"

type BookingService interface {
	UpdateDiningStatus(ctx context.Context, bookingID int64, newStatus string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
