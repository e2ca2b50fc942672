package extend_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
)

// UseCase валидатор продления бронирования
//
// Продление проверяется по всем столам бронирования, а не только по столу,
// с которого оно запрошено: у бронирования на несколько столов продлённый
// интервал должен быть свободен на каждом из них
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	scheduleRepo   ScheduleRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		scheduleRepo:   scheduleRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute продлевает бронирование до нового времени окончания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: booking=%d, table=%d, newEnd=%s",
		req.BookingID, req.TableID, req.NewEndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendBooking: validation failed: %v", err)
		return nil, err
	}

	var response *Response

	// 2. Проверка и запись нового окончания в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ExtendBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.IsActive() {
			uc.logger.Warn("ExtendBooking: booking id=%d is %s", booking.ID, booking.Status)
			return fmt.Errorf("%w: status=%s", ErrBookingInactive, booking.Status)
		}

		if !req.NewEndTime.IsAfter(booking.StartTime) {
			return fmt.Errorf("%w: newEndTime must be after booking start %s", ErrInvalidInput, booking.StartTime)
		}

		tableIDs, err := uc.assignmentRepo.GetTableIDsByBooking(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to get assigned tables: %v", ErrInternal, err)
		}
		if !containsTable(tableIDs, req.TableID) {
			uc.logger.Warn("ExtendBooking: table id=%d is not assigned to booking id=%d", req.TableID, req.BookingID)
			return fmt.Errorf("%w: table=%d", ErrTableNotAssigned, req.TableID)
		}

		config, err := uc.getConfig(txCtx)
		if err != nil {
			return err
		}

		// 2.1. Перепроверяем весь интервал [start, newEnd) на каждом столе
		// бронирования, исключая само бронирование
		for _, tableID := range tableIDs {
			bookings, err := uc.bookingRepo.GetByTableAndDate(txCtx, domain.TableBookingsFilter{
				TableID: tableID,
				Date:    booking.BookingDate,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to get bookings for table id=%d: %v", ErrInternal, tableID, err)
			}

			colliding := domain.FindConflict(bookings, booking.StartTime, req.NewEndTime,
				&req.BookingID, config.DefaultDurationMinutes)
			if colliding != nil {
				uc.logger.Warn("ExtendBooking: conflict on table id=%d with booking id=%d (%s-%s)",
					tableID, colliding.ID, colliding.StartTime, colliding.EffectiveEnd(config.DefaultDurationMinutes))
				return &ConflictError{
					Conflict: domain.NewConflictInfo(tableID, colliding, config.DefaultDurationMinutes),
				}
			}
		}

		if err := uc.bookingRepo.UpdateEndTime(txCtx, req.BookingID, req.NewEndTime); err != nil {
			return fmt.Errorf("%w: failed to update end time: %v", ErrInternal, err)
		}

		response = &Response{
			BookingID: booking.ID,
			TableIDs:  tableIDs,
			StartTime: booking.StartTime,
			EndTime:   req.NewEndTime,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ExtendBooking: booking id=%d extended to %s", req.BookingID, req.NewEndTime)
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

func containsTable(tableIDs []int64, tableID int64) bool {
	for _, id := range tableIDs {
		if id == tableID {
			return true
		}
	}
	return false
}
