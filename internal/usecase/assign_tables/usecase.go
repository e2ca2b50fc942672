package assign_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// UseCase координатор назначения столов бронированию
//
// Назначение атомарно с точки зрения вызывающей стороны: старые назначения
// снимаются, конфликты перепроверяются и новая связь записывается в одной
// сериализуемой транзакции. Любой конфликт откатывает транзакцию целиком,
// включая снятие старых назначений - частичных записей не бывает
type UseCase struct {
	bookingRepo    BookingRepository
	tableRepo      TableRepository
	assignmentRepo AssignmentRepository
	scheduleRepo   ScheduleRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	assignmentRepo AssignmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tableRepo:      tableRepo,
		assignmentRepo: assignmentRepo,
		scheduleRepo:   scheduleRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute назначает столы бронированию по принципу "всё или ничего"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignTables: booking=%d, tables=%v, date=%s, time=%s",
		req.BookingID, req.TableIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бронирования
	if _, err := uc.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AssignTables: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AssignTables: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем, что все запрошенные столы существуют и активны
	if len(req.TableIDs) > 0 {
		tables, err := uc.tableRepo.GetByIDs(ctx, req.TableIDs)
		if err != nil {
			uc.logger.Error("AssignTables: failed to get tables %v: %v", req.TableIDs, err)
			return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
		}
		if err := validateTables(req.TableIDs, tables); err != nil {
			uc.logger.Warn("AssignTables: table validation failed: %v", err)
			return nil, err
		}
	}

	var effectiveEnd types.TimeString

	// 4. Снятие старых назначений, перепроверка конфликтов и запись новой
	// связи выполняются в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		config, err := uc.getConfig(txCtx)
		if err != nil {
			return err
		}

		effectiveEnd = resolveEnd(req, config.DefaultDurationMinutes)

		// 4.1. Снимаем старые назначения до перепроверки: переназначаемое
		// бронирование не должно конфликтовать само с собой
		if err := uc.assignmentRepo.DeleteByBooking(txCtx, req.BookingID); err != nil {
			return fmt.Errorf("%w: failed to clear assignments: %v", ErrInternal, err)
		}

		// 4.2. Перепроверяем каждый запрошенный стол (FOR UPDATE внутри транзакции)
		for _, tableID := range req.TableIDs {
			bookings, err := uc.bookingRepo.GetByTableAndDate(txCtx, domain.TableBookingsFilter{
				TableID: tableID,
				Date:    req.Date,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to get bookings for table id=%d: %v", ErrInternal, tableID, err)
			}

			colliding := domain.FindConflict(bookings, req.StartTime, effectiveEnd,
				&req.BookingID, config.DefaultDurationMinutes)
			if colliding != nil {
				uc.logger.Warn("AssignTables: conflict on table id=%d with booking id=%d (%s-%s)",
					tableID, colliding.ID, colliding.StartTime, colliding.EffectiveEnd(config.DefaultDurationMinutes))
				return &ConflictError{
					Conflict: domain.NewConflictInfo(tableID, colliding, config.DefaultDurationMinutes),
				}
			}
		}

		// 4.3. Пустой список - операция "снять назначение", завершаемся успешно
		if len(req.TableIDs) == 0 {
			return nil
		}

		// 4.4. Записываем связь для всех запрошенных столов
		if err := uc.assignmentRepo.Insert(txCtx, req.BookingID, req.TableIDs); err != nil {
			return fmt.Errorf("%w: failed to insert assignments: %v", ErrInternal, err)
		}

		// 4.5. Сохраняем вычисленное время окончания
		if err := uc.bookingRepo.UpdateEndTime(txCtx, req.BookingID, effectiveEnd); err != nil {
			return fmt.Errorf("%w: failed to update end time: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	response := &Response{
		BookingID: req.BookingID,
		TableIDs:  req.TableIDs,
		StartTime: req.StartTime,
		EndTime:   effectiveEnd,
	}
	if len(req.TableIDs) > 0 {
		// Основной стол - производное значение: первый стол списка
		response.PrimaryTableID = &req.TableIDs[0]
	}

	uc.logger.Info("AssignTables: booking id=%d assigned %d tables", req.BookingID, len(req.TableIDs))
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

// resolveEnd возвращает конец интервала, подставляя start + default при отсутствии
func resolveEnd(req *Request, defaultMinutes int) types.TimeString {
	if req.EndTime != nil && !req.EndTime.IsZero() {
		return *req.EndTime
	}
	return types.FromMinutes(req.StartTime.Minutes() + defaultMinutes)
}
