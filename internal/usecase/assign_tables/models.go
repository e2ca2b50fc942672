package assign_tables

import (
	"time"

	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Request модель запроса на назначение столов бронированию
// Пустой список столов - допустимая операция "снять назначение"
type Request struct {
	BookingID int64
	TableIDs  []int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   *types.TimeString // Опционально, иначе start + default duration
}

// Response модель ответа с результатом назначения
type Response struct {
	BookingID      int64
	TableIDs       []int64
	PrimaryTableID *int64 // Первый стол списка; nil после снятия назначения
	StartTime      types.TimeString
	EndTime        types.TimeString
}
