package quick_seat

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Request модель запроса на быструю посадку walk-in гостя
// Пустые поля заполняются дефолтами: имя "Walk-in", 2 гостя, 120 минут
type Request struct {
	TableID         int64
	CustomerName    string
	GuestCount      int
	DurationMinutes int
	Notes           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID    int64
	TableID      int64
	CustomerName string
	GuestCount   int
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       domain.BookingStatus
	DiningStatus domain.DiningStatus
}
