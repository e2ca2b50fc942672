package availability

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// GetAvailableTablesRequest запрос на разбиение инвентаря столов
// на свободные и занятые
//
// Если StartTime не указано и дата - сегодня, доступность считается
// на текущий момент (стол занят, только если "сейчас" попадает в один
// из его интервалов)
type GetAvailableTablesRequest struct {
	Date        time.Time
	StartTime   types.TimeString  // Начало интервала (опционально)
	EndTime     *types.TimeString // Конец интервала (опционально, иначе start + default)
	MinCapacity *int              // Минимальная вместимость стола (опционально)
	Zone        *domain.Zone      // Фильтр по зоне (опционально)
}

// GetConflictRequest запрос на поиск конфликтующего бронирования
type GetConflictRequest struct {
	TableID          int64
	Date             time.Time
	StartTime        types.TimeString
	EndTime          *types.TimeString // Опционально, иначе start + default
	ExcludeBookingID *int64            // Бронирование, исключаемое из проверки (для edit/extend)
}

// ReservedTable занятый стол вместе с его активными бронированиями
type ReservedTable struct {
	Table    *domain.Table
	Bookings []*domain.Booking
}

// Result результат разбиения инвентаря столов
type Result struct {
	Date     time.Time
	Free     []*domain.Table
	Reserved []*ReservedTable
}
