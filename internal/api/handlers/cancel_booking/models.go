package cancel_booking

import (
	"github.com/m04kA/SMC-TableService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Status по умолчанию "cancelled"; "no_show" отмечает неявку гостя
type CancelBookingRequest struct {
	Status             string  `json:"status,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	status := r.Status
	if status == "" {
		status = "cancelled"
	}

	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		Status: status,
		Reason: reason,
	}
}
