package extend_booking

import (
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Request модель запроса на продление бронирования
type Request struct {
	BookingID  int64
	TableID    int64 // Стол, с которого запрошено продление; должен быть назначен бронированию
	NewEndTime types.TimeString
}

// Response модель ответа с результатом продления
type Response struct {
	BookingID int64
	TableIDs  []int64
	StartTime types.TimeString
	EndTime   types.TimeString
}
