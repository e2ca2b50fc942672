package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
	tableRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/table"
)

// Service сервис доступности столов: детектор конфликтов и калькулятор
// свободных/занятых столов. Все операции - чистые чтения; клиент с
// долгоживущим экраном "сегодня" должен периодически перезапрашивать
// доступность, чтобы столы с закончившимися бронированиями становились
// свободными без явного события
type Service struct {
	tableRepo    TableRepository
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		tableRepo:    tableRepo,
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetAvailableTables разбивает инвентарь столов на свободные и занятые
// на указанную дату и интервал
func (s *Service) GetAvailableTables(ctx context.Context, req *GetAvailableTablesRequest) (*Result, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Zone != nil && !req.Zone.IsValid() {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrInvalidInput, *req.Zone)
	}
	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}
	if req.EndTime != nil && !req.EndTime.IsAfter(req.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	config, err := s.getConfig(ctx)
	if err != nil {
		return nil, err
	}

	// Неактивные столы не попадают в расчет доступности вовсе
	tables, err := s.tableRepo.List(ctx, domain.TableFilter{
		Zone:        req.Zone,
		MinCapacity: req.MinCapacity,
	})
	if err != nil {
		s.logger.Error("GetAvailableTables: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	assigned, err := s.bookingRepo.GetAssignedByDate(ctx, req.Date)
	if err != nil {
		s.logger.Error("GetAvailableTables: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	result := computeAvailability(tables, groupByTable(assigned), req.Date, now, config, req.StartTime, req.EndTime)

	s.logger.Info("GetAvailableTables: date=%s, free=%d, reserved=%d",
		req.Date.Format(domain.DateFormat), len(result.Free), len(result.Reserved))

	return result, nil
}

// GetConflict ищет первое активное бронирование стола, пересекающееся
// с интервалом-кандидатом. Возвращает nil, если конфликтов нет -
// это успешный путь для назначения и продления
func (s *Service) GetConflict(ctx context.Context, req *GetConflictRequest) (*domain.ConflictInfo, error) {
	if req.TableID <= 0 {
		return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if req.EndTime != nil && !req.EndTime.IsAfter(req.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if _, err := s.tableRepo.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetConflict: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	config, err := s.getConfig(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByTableAndDate(ctx, domain.TableBookingsFilter{
		TableID: req.TableID,
		Date:    req.Date,
	})
	if err != nil {
		s.logger.Error("GetConflict: failed to get bookings for table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	end := effectiveEnd(req.StartTime, req.EndTime, config.DefaultDurationMinutes)
	colliding := domain.FindConflict(bookings, req.StartTime, end, req.ExcludeBookingID, config.DefaultDurationMinutes)
	if colliding == nil {
		return nil, nil
	}

	return domain.NewConflictInfo(req.TableID, colliding, config.DefaultDurationMinutes), nil
}

// IsAvailable возвращает true, если интервал на столе свободен
func (s *Service) IsAvailable(ctx context.Context, req *GetConflictRequest) (bool, error) {
	conflict, err := s.GetConflict(ctx, req)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// getConfig получает конфигурацию расписания, подставляя дефолты при её отсутствии
func (s *Service) getConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	config, err := s.scheduleRepo.GetConfig(ctx)
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		s.logger.Error("getConfig: failed to get schedule config: %v", err)
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
