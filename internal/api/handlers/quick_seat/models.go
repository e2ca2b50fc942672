package quick_seat

import (
	"github.com/m04kA/SMC-TableService/internal/domain"
	quickSeat "github.com/m04kA/SMC-TableService/internal/usecase/quick_seat"
)

// QuickSeatRequest HTTP request model
// Все поля опциональны: walk-in гость по умолчанию - компания из двух человек
type QuickSeatRequest struct {
	CustomerName    string  `json:"customerName,omitempty"`
	GuestCount      int     `json:"guestCount,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// QuickSeatResponse HTTP response model
type QuickSeatResponse struct {
	BookingID    int64  `json:"bookingId"`
	TableID      int64  `json:"tableId"`
	CustomerName string `json:"customerName"`
	GuestCount   int    `json:"guestCount"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	DiningStatus string `json:"diningStatus"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *QuickSeatRequest) ToUseCaseRequest(tableID int64) *quickSeat.Request {
	return &quickSeat.Request{
		TableID:         tableID,
		CustomerName:    r.CustomerName,
		GuestCount:      r.GuestCount,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quickSeat.Response) *QuickSeatResponse {
	return &QuickSeatResponse{
		BookingID:    resp.BookingID,
		TableID:      resp.TableID,
		CustomerName: resp.CustomerName,
		GuestCount:   resp.GuestCount,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       string(resp.Status),
		DiningStatus: string(resp.DiningStatus),
	}
}
