package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TableService/internal/service/schedule/models"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Service сервис конфигурации расписания: рабочие часы, длительности
// и потолки вместимости слотов
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetConfig получает конфигурацию расписания вместе с рабочими часами
// При отсутствии конфигурации возвращаются значения по умолчанию
func (s *Service) GetConfig(ctx context.Context) (*models.ScheduleConfigResponse, error) {
	config, err := s.scheduleRepo.GetConfig(ctx)
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		s.logger.Error("GetConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	if config == nil {
		config = &domain.ScheduleConfig{
			SlotDurationMinutes:    domain.DefaultSlotDurationMinutes,
			DefaultDurationMinutes: domain.DefaultBookingDurationMinutes,
			MaxGuestsPerSlot:       domain.DefaultMaxGuestsPerSlot,
			MaxTablesPerSlot:       domain.DefaultMaxTablesPerSlot,
			FutureDayPolicy:        domain.DefaultFutureDayPolicy,
		}
		s.logger.Info("GetConfig: using default schedule config")
	}

	hours, err := s.scheduleRepo.GetOperatingHours(ctx)
	if err != nil {
		s.logger.Error("GetConfig: failed to get operating hours: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - operating hours error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config, hours), nil
}

// UpdateConfig сохраняет конфигурацию расписания и рабочие часы одной транзакцией
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateScheduleConfigRequest) (*models.ScheduleConfigResponse, error) {
	config, hours, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.scheduleRepo.UpsertConfig(txCtx, config); err != nil {
			return fmt.Errorf("%w: UpdateConfig - upsert config: %v", ErrInternal, err)
		}
		for _, day := range hours {
			if err := s.scheduleRepo.UpsertOperatingHours(txCtx, day); err != nil {
				return fmt.Errorf("%w: UpdateConfig - upsert operating hours: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateConfig: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("UpdateConfig: schedule config updated (slot=%dm, default=%dm, guests=%d, tables=%d, policy=%s)",
		config.SlotDurationMinutes, config.DefaultDurationMinutes,
		config.MaxGuestsPerSlot, config.MaxTablesPerSlot, config.FutureDayPolicy)

	return s.GetConfig(ctx)
}

// validateRequest проверяет запрос и конвертирует его в domain модели
func validateRequest(req *models.UpdateScheduleConfigRequest) (*domain.ScheduleConfig, []domain.DayHours, error) {
	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, nil, fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidSlotDuration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if req.DefaultDurationMinutes < domain.MinBookingDurationMinutes || req.DefaultDurationMinutes > domain.MaxBookingDurationMinutes {
		return nil, nil, fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidDefaultDuration, domain.MinBookingDurationMinutes, domain.MaxBookingDurationMinutes)
	}
	if req.MaxGuestsPerSlot < domain.MinGuestsPerSlot || req.MaxGuestsPerSlot > domain.MaxGuestsPerSlot {
		return nil, nil, fmt.Errorf("%w: maxGuestsPerSlot out of range", ErrInvalidCapacity)
	}
	if req.MaxTablesPerSlot < domain.MinTablesPerSlot || req.MaxTablesPerSlot > domain.MaxTablesPerSlot {
		return nil, nil, fmt.Errorf("%w: maxTablesPerSlot out of range", ErrInvalidCapacity)
	}

	policy := domain.FutureDayPolicy(req.FutureDayPolicy)
	if req.FutureDayPolicy == "" {
		policy = domain.DefaultFutureDayPolicy
	}
	if !policy.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, req.FutureDayPolicy)
	}

	hours := make([]domain.DayHours, 0, len(req.OperatingHours))
	for _, day := range req.OperatingHours {
		converted, err := convertDayHours(day)
		if err != nil {
			return nil, nil, err
		}
		hours = append(hours, converted)
	}

	config := &domain.ScheduleConfig{
		SlotDurationMinutes:    req.SlotDurationMinutes,
		DefaultDurationMinutes: req.DefaultDurationMinutes,
		MaxGuestsPerSlot:       req.MaxGuestsPerSlot,
		MaxTablesPerSlot:       req.MaxTablesPerSlot,
		FutureDayPolicy:        policy,
	}

	return config, hours, nil
}

// convertDayHours валидирует и конвертирует рабочие часы одного дня
func convertDayHours(day models.DayHoursModel) (domain.DayHours, error) {
	if day.Weekday < 0 || day.Weekday > 6 {
		return domain.DayHours{}, fmt.Errorf("%w: weekday %d out of range", ErrInvalidHours, day.Weekday)
	}

	result := domain.DayHours{
		Weekday:  time.Weekday(day.Weekday),
		IsClosed: day.IsClosed,
	}
	if day.IsClosed {
		return result, nil
	}

	var err error
	if result.LunchOpen, result.LunchClose, err = parsePeriod(day.LunchOpen, day.LunchClose); err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: weekday %d lunch: %v", ErrInvalidHours, day.Weekday, err)
	}
	if result.DinnerOpen, result.DinnerClose, err = parsePeriod(day.DinnerOpen, day.DinnerClose); err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: weekday %d dinner: %v", ErrInvalidHours, day.Weekday, err)
	}

	if result.LunchOpen == nil && result.DinnerOpen == nil {
		return domain.DayHours{}, fmt.Errorf("%w: weekday %d open day has no service periods", ErrInvalidHours, day.Weekday)
	}

	return result, nil
}

// parsePeriod парсит пару открытие/закрытие; обе границы либо заданы, либо отсутствуют
func parsePeriod(open, close *string) (*types.TimeString, *types.TimeString, error) {
	if open == nil && close == nil {
		return nil, nil, nil
	}
	if open == nil || close == nil {
		return nil, nil, fmt.Errorf("both open and close must be set")
	}

	openTime, err := types.NewTimeStringFromString(*open)
	if err != nil {
		return nil, nil, err
	}
	closeTime, err := types.NewTimeStringFromString(*close)
	if err != nil {
		return nil, nil, err
	}
	if !closeTime.IsAfter(openTime) {
		return nil, nil, fmt.Errorf("close %s must be after open %s", closeTime, openTime)
	}

	return &openTime, &closeTime, nil
}
