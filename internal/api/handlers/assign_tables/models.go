package assign_tables

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	assignTables "github.com/m04kA/SMC-TableService/internal/usecase/assign_tables"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// AssignTablesRequest HTTP request model
// Пустой список tableIds снимает все назначения бронирования
type AssignTablesRequest struct {
	TableIDs  []int64 `json:"tableIds"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime,omitempty"`
}

// AssignTablesResponse HTTP response model
type AssignTablesResponse struct {
	BookingID      int64   `json:"bookingId"`
	TableIDs       []int64 `json:"tableIds"`
	PrimaryTableID *int64  `json:"primaryTableId"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
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
func (r *AssignTablesRequest) ToUseCaseRequest(bookingID int64) (*assignTables.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &assignTables.Request{
		BookingID: bookingID,
		TableIDs:  r.TableIDs,
		Date:      date,
		StartTime: startTime,
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignTables.Response) *AssignTablesResponse {
	return &AssignTablesResponse{
		BookingID:      resp.BookingID,
		TableIDs:       resp.TableIDs,
		PrimaryTableID: resp.PrimaryTableID,
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
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
