package get_table_conflict

import (
	"github.com/m04kA/SMC-TableService/internal/domain"
)

// ConflictCheckResponse HTTP response model
// Conflict равен null, когда интервал свободен
type ConflictCheckResponse struct {
	Available bool           `json:"available"`
	Conflict  *ConflictModel `json:"conflict"`
}

// ConflictModel детали конфликтующего бронирования
type ConflictModel struct {
	BookingID    int64  `json:"bookingId"`
	TableID      int64  `json:"tableId"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FromConflictInfo конвертирует domain.ConflictInfo в HTTP response
func FromConflictInfo(conflict *domain.ConflictInfo) *ConflictCheckResponse {
	if conflict == nil {
		return &ConflictCheckResponse{Available: true}
	}

	return &ConflictCheckResponse{
		Available: false,
		Conflict: &ConflictModel{
			BookingID:    conflict.BookingID,
			TableID:      conflict.TableID,
			CustomerName: conflict.CustomerName,
			StartTime:    conflict.StartTime.String(),
			EndTime:      conflict.EndTime.String(),
		},
	}
}
