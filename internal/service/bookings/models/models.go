package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// BookingResponse модель бронирования для отдачи наружу
type BookingResponse struct {
	ID             int64
	CustomerName   string
	GuestCount     int
	BookingDate    time.Time
	StartTime      string
	EndTime        *string
	Status         string
	DiningStatus   string
	TableIDs       []int64 // Назначенные столы в порядке позиций
	PrimaryTableID *int64  // Первый назначенный стол (производное значение)
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Status string // "cancelled" или "no_show"
	Reason string
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(booking *domain.Booking, tableIDs []int64) *BookingResponse {
	var endTime *string
	if booking.EndTime != nil {
		s := booking.EndTime.String()
		endTime = &s
	}

	return &BookingResponse{
		ID:             booking.ID,
		CustomerName:   booking.CustomerName,
		GuestCount:     booking.GuestCount,
		BookingDate:    booking.BookingDate,
		StartTime:      booking.StartTime.String(),
		EndTime:        endTime,
		Status:         string(booking.Status),
		DiningStatus:   string(booking.DiningStatus),
		TableIDs:       tableIDs,
		PrimaryTableID: booking.PrimaryTableID,
		Notes:          booking.Notes,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований без загрузки назначений
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = FromDomainBooking(booking, nil)
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusNew, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// ToDomainDiningStatus конвертирует строку в domain.DiningStatus
func ToDomainDiningStatus(s string) (domain.DiningStatus, error) {
	switch domain.DiningStatus(s) {
	case domain.DiningPending, domain.DiningReserved, domain.DiningSeated,
		domain.DiningCompleted, domain.DiningCancelled, domain.DiningNoShow:
		return domain.DiningStatus(s), nil
	default:
		return "", fmt.Errorf("unknown dining status %q", s)
	}
}
