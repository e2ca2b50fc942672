package models

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// DayHoursModel рабочие часы одного дня недели
type DayHoursModel struct {
	Weekday     int
	IsClosed    bool
	LunchOpen   *string
	LunchClose  *string
	DinnerOpen  *string
	DinnerClose *string
}

// ScheduleConfigResponse конфигурация расписания вместе с рабочими часами
type ScheduleConfigResponse struct {
	SlotDurationMinutes    int
	DefaultDurationMinutes int
	MaxGuestsPerSlot       int
	MaxTablesPerSlot       int
	FutureDayPolicy        string
	OperatingHours         []DayHoursModel
	UpdatedAt              time.Time
}

// UpdateScheduleConfigRequest запрос на обновление конфигурации расписания
type UpdateScheduleConfigRequest struct {
	SlotDurationMinutes    int
	DefaultDurationMinutes int
	MaxGuestsPerSlot       int
	MaxTablesPerSlot       int
	FutureDayPolicy        string
	OperatingHours         []DayHoursModel
}

// FromDomainConfig конвертирует domain модели в response
func FromDomainConfig(config *domain.ScheduleConfig, hours []domain.DayHours) *ScheduleConfigResponse {
	days := make([]DayHoursModel, len(hours))
	for i, day := range hours {
		days[i] = DayHoursModel{
			Weekday:     int(day.Weekday),
			IsClosed:    day.IsClosed,
			LunchOpen:   timePtr(day.LunchOpen),
			LunchClose:  timePtr(day.LunchClose),
			DinnerOpen:  timePtr(day.DinnerOpen),
			DinnerClose: timePtr(day.DinnerClose),
		}
	}

	return &ScheduleConfigResponse{
		SlotDurationMinutes:    config.SlotDurationMinutes,
		DefaultDurationMinutes: config.DefaultDurationMinutes,
		MaxGuestsPerSlot:       config.MaxGuestsPerSlot,
		MaxTablesPerSlot:       config.MaxTablesPerSlot,
		FutureDayPolicy:        string(config.FutureDayPolicy),
		OperatingHours:         days,
		UpdatedAt:              config.UpdatedAt,
	}
}

func timePtr(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
