package get_booking

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64     `json:"id"`
	CustomerName   string    `json:"customerName"`
	GuestCount     int       `json:"guestCount"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        *string   `json:"endTime"`
	Status         string    `json:"status"`
	DiningStatus   string    `json:"diningStatus"`
	TableIDs       []int64   `json:"tableIds"`
	PrimaryTableID *int64    `json:"primaryTableId"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		CustomerName:   resp.CustomerName,
		GuestCount:     resp.GuestCount,
		Date:           resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime,
		EndTime:        resp.EndTime,
		Status:         resp.Status,
		DiningStatus:   resp.DiningStatus,
		TableIDs:       resp.TableIDs,
		PrimaryTableID: resp.PrimaryTableID,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}
