package get_table_bookings

import (
	"github.com/m04kA/SMC-TableService/internal/service/bookings/models"
)

// TableBookingsResponse HTTP response model
type TableBookingsResponse struct {
	TableID  int64          `json:"tableId"`
	Date     string         `json:"date"`
	Bookings []BookingModel `json:"bookings"`
}

// BookingModel модель бронирования в списке
type BookingModel struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	GuestCount   int     `json:"guestCount"`
	StartTime    string  `json:"startTime"`
	EndTime      *string `json:"endTime"`
	Status       string  `json:"status"`
	DiningStatus string  `json:"diningStatus"`
	Notes        *string `json:"notes,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(tableID int64, dateStr string, resp *models.BookingListResponse) *TableBookingsResponse {
	result := make([]BookingModel, len(resp.Bookings))
	for i, booking := range resp.Bookings {
		result[i] = BookingModel{
			ID:           booking.ID,
			CustomerName: booking.CustomerName,
			GuestCount:   booking.GuestCount,
			StartTime:    booking.StartTime,
			EndTime:      booking.EndTime,
			Status:       booking.Status,
			DiningStatus: booking.DiningStatus,
			Notes:        booking.Notes,
		}
	}

	return &TableBookingsResponse{
		TableID:  tableID,
		Date:     dateStr,
		Bookings: result,
	}
}
