package extend_booking

import (
	"github.com/m04kA/SMC-TableService/internal/domain"
	extendBooking "github.com/m04kA/SMC-TableService/internal/usecase/extend_booking"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	TableID    int64  `json:"tableId"`
	NewEndTime string `json:"newEndTime"`
}

// ExtendBookingResponse HTTP response model
type ExtendBookingResponse struct {
	BookingID int64   `json:"bookingId"`
	TableIDs  []int64 `json:"tableIds"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// ConflictDetail детали конфликтующего бронирования для ответа 409
type ConflictDetail struct {
	BookingID    int64  `json:"bookingId"`
	TableID      int64  `json:"tableId"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ExtendBookingRequest) ToUseCaseRequest(bookingID int64) (*extendBooking.Request, error) {
	newEndTime, err := types.NewTimeStringFromString(r.NewEndTime)
	if err != nil {
		return nil, err
	}

	return &extendBooking.Request{
		BookingID:  bookingID,
		TableID:    r.TableID,
		NewEndTime: newEndTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *extendBooking.Response) *ExtendBookingResponse {
	return &ExtendBookingResponse{
		BookingID: resp.BookingID,
		TableIDs:  resp.TableIDs,
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
	}
}

// FromConflictInfo конвертирует детали конфликта для ответа 409
func FromConflictInfo(conflict *domain.ConflictInfo) *ConflictDetail {
	return &ConflictDetail{
		BookingID:    conflict.BookingID,
		TableID:      conflict.TableID,
		CustomerName: conflict.CustomerName,
		StartTime:    conflict.StartTime.String(),
		EndTime:      conflict.EndTime.String(),
	}
}
