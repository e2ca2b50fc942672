package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// Request модель запроса свободных слотов на день
type Request struct {
	Date       time.Time
	GuestCount int // Размер компании; 0 трактуется как один гость
}

// Response модель ответа со сгенерированными слотами
// Закрытый или прошедший день возвращает пустой список, а не ошибку
type Response struct {
	Date                time.Time
	SlotDurationMinutes int
	Slots               []domain.Slot
}
