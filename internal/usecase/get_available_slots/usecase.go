package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// UseCase генератор слотов бронирования на день
//
// Слоты считаются по агрегатным потолкам (гости и посадки на один момент
// старта), а не по занятости конкретных столов - это грубая оценка для
// формы бронирования, точную проверку делает назначение столов
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает слоты на указанный день с остаточной вместимостью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, guests=%d", req.Date.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	config, err := uc.getConfig(ctx)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Date:                req.Date,
		SlotDurationMinutes: config.SlotDurationMinutes,
		Slots:               []domain.Slot{},
	}

	// 2. Прошедший день не бронируется - пустой список без ошибки
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		return response, nil
	}

	// 3. Часы работы на день недели; закрытый день - пустой список
	hours, err := uc.scheduleRepo.GetOperatingHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get operating hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	day := domain.HoursForDay(hours, req.Date.Weekday())
	periods := day.Periods()
	if len(periods) == 0 {
		return response, nil
	}

	slotTimes := generateSlotTimes(periods, config.SlotDurationMinutes)

	// 4. Сегодня уже наступившие слоты не предлагаются
	if isSameDay(req.Date, now) {
		slotTimes = dropPastSlots(slotTimes, types.NewTimeString(now))
	}
	if len(slotTimes) == 0 {
		return response, nil
	}

	// 5. Загружаем активные бронирования дня и размечаем остаточную вместимость
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	requestedGuests := req.GuestCount
	if requestedGuests == 0 {
		requestedGuests = 1
	}

	response.Slots = annotateSlots(slotTimes, bookings, config, requestedGuests)

	uc.logger.Info("GetAvailableSlots: date=%s generated %d slots",
		req.Date.Format(domain.DateFormat), len(response.Slots))
	return response, nil
}

// getConfig получает конфигурацию расписания, подставляя дефолты при её отсутствии
func (uc *UseCase) getConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	config, err := uc.scheduleRepo.GetConfig(ctx)
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	if config == nil {
		config = &domain.ScheduleConfig{
			SlotDurationMinutes:    domain.DefaultSlotDurationMinutes,
			DefaultDurationMinutes: domain.DefaultBookingDurationMinutes,
			MaxGuestsPerSlot:       domain.DefaultMaxGuestsPerSlot,
			MaxTablesPerSlot:       domain.DefaultMaxTablesPerSlot,
			FutureDayPolicy:        domain.DefaultFutureDayPolicy,
		}
	}

	return config, nil
}

// isSameDay проверяет, что две даты приходятся на один календарный день
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateDay.Before(nowDay)
}
