package update_schedule_config

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/service/schedule/models"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	SlotDurationMinutes    int            `json:"slotDurationMinutes"`
	DefaultDurationMinutes int            `json:"defaultDurationMinutes"`
	MaxGuestsPerSlot       int            `json:"maxGuestsPerSlot"`
	MaxTablesPerSlot       int            `json:"maxTablesPerSlot"`
	FutureDayPolicy        string         `json:"futureDayPolicy"`
	OperatingHours         []DayHoursItem `json:"operatingHours"`
}

// DayHoursItem рабочие часы одного дня недели
type DayHoursItem struct {
	Weekday     int     `json:"weekday"`
	IsClosed    bool    `json:"isClosed"`
	LunchOpen   *string `json:"lunchOpen"`
	LunchClose  *string `json:"lunchClose"`
	DinnerOpen  *string `json:"dinnerOpen"`
	DinnerClose *string `json:"dinnerClose"`
}

// ScheduleConfigResponse HTTP response model
type ScheduleConfigResponse struct {
	SlotDurationMinutes    int            `json:"slotDurationMinutes"`
	DefaultDurationMinutes int            `json:"defaultDurationMinutes"`
	MaxGuestsPerSlot       int            `json:"maxGuestsPerSlot"`
	MaxTablesPerSlot       int            `json:"maxTablesPerSlot"`
	FutureDayPolicy        string         `json:"futureDayPolicy"`
	OperatingHours         []DayHoursItem `json:"operatingHours"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest() *models.UpdateScheduleConfigRequest {
	hours := make([]models.DayHoursModel, len(r.OperatingHours))
	for i, day := range r.OperatingHours {
		hours[i] = models.DayHoursModel{
			Weekday:     day.Weekday,
			IsClosed:    day.IsClosed,
			LunchOpen:   day.LunchOpen,
			LunchClose:  day.LunchClose,
			DinnerOpen:  day.DinnerOpen,
			DinnerClose: day.DinnerClose,
		}
	}

	return &models.UpdateScheduleConfigRequest{
		SlotDurationMinutes:    r.SlotDurationMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		MaxGuestsPerSlot:       r.MaxGuestsPerSlot,
		MaxTablesPerSlot:       r.MaxTablesPerSlot,
		FutureDayPolicy:        r.FutureDayPolicy,
		OperatingHours:         hours,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleConfigResponse) *ScheduleConfigResponse {
	hours := make([]DayHoursItem, len(resp.OperatingHours))
	for i, day := range resp.OperatingHours {
		hours[i] = DayHoursItem{
			Weekday:     day.Weekday,
			IsClosed:    day.IsClosed,
			LunchOpen:   day.LunchOpen,
			LunchClose:  day.LunchClose,
			DinnerOpen:  day.DinnerOpen,
			DinnerClose: day.DinnerClose,
		}
	}

	return &ScheduleConfigResponse{
		SlotDurationMinutes:    resp.SlotDurationMinutes,
		DefaultDurationMinutes: resp.DefaultDurationMinutes,
		MaxGuestsPerSlot:       resp.MaxGuestsPerSlot,
		MaxTablesPerSlot:       resp.MaxTablesPerSlot,
		FutureDayPolicy:        resp.FutureDayPolicy,
		OperatingHours:         hours,
		UpdatedAt:              resp.UpdatedAt,
	}
}
