package quick_seat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	tableRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/table"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Имя гостя по умолчанию для walk-in посадки без представления
const defaultCustomerName = "Walk-in"

// UseCase быстрая посадка walk-in гостя за конкретный стол
//
// Конфликт не проверяется: хостес сажает гостя за стол, который видит
// свободным прямо сейчас. Создание бронирования и привязка стола при этом
// выполняются в одной транзакции - осиротевших бронирований без стола не бывает
type UseCase struct {
	bookingRepo    BookingRepository
	tableRepo      TableRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tableRepo:      tableRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute сажает walk-in гостя за стол, создавая бронирование с текущего момента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuickSeat: table=%d, guests=%d", req.TableID, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuickSeat: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что стол существует и активен
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("QuickSeat: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("QuickSeat: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !table.IsActive {
		uc.logger.Warn("QuickSeat: table id=%d is inactive", req.TableID)
		return nil, fmt.Errorf("%w: id=%d", ErrTableInactive, req.TableID)
	}

	// 3. Начало бронирования - текущий момент, округленный вниз до четверти часа
	now := uc.timeProvider.Now()
	startTime := roundDownToQuarter(now)

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.QuickSeatDurationMinutes
	}
	endTime := types.FromMinutes(startTime.Minutes() + duration)

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = domain.QuickSeatGuestCount
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}

	booking := &domain.Booking{
		CustomerName: customerName,
		GuestCount:   guestCount,
		BookingDate:  now,
		StartTime:    startTime,
		EndTime:      &endTime,
		Status:       domain.StatusConfirmed,
		DiningStatus: domain.DiningSeated,
		Notes:        req.Notes,
	}

	// 4. Бронирование и привязка стола создаются атомарно
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.assignmentRepo.Insert(txCtx, created.ID, []int64{req.TableID}); err != nil {
			return fmt.Errorf("%w: failed to assign table: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("QuickSeat: booking id=%d seated at table id=%d (%s-%s)",
		created.ID, req.TableID, startTime, endTime)

	return &Response{
		BookingID:    created.ID,
		TableID:      req.TableID,
		CustomerName: created.CustomerName,
		GuestCount:   created.GuestCount,
		Date:         created.BookingDate,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       created.Status,
		DiningStatus: created.DiningStatus,
	}, nil
}

// roundDownToQuarter округляет момент вниз до четверти часа: 18:37 -> "18:30"
func roundDownToQuarter(t time.Time) types.TimeString {
	minutes := t.Hour()*60 + t.Minute()
	minutes -= minutes % domain.QuickSeatRoundingMinutes
	return types.FromMinutes(minutes)
}
