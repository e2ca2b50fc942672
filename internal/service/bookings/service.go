package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TableService/internal/service/bookings/models"
)

// diningTransitions допустимые переходы статуса рассадки
// Терминальные статусы (cancelled, no_show) достижимы из любого нетерминального
var diningTransitions = map[domain.DiningStatus][]domain.DiningStatus{
	domain.DiningPending:  {domain.DiningReserved, domain.DiningSeated, domain.DiningCancelled, domain.DiningNoShow},
	domain.DiningReserved: {domain.DiningSeated, domain.DiningCancelled, domain.DiningNoShow},
	domain.DiningSeated:   {domain.DiningCompleted, domain.DiningCancelled},
}

// Service сервис для работы с бронированиями: чтение, отмена,
// освобождение столов и прогресс рассадки
type Service struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID вместе с назначенными столами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	tableIDs, err := s.assignmentRepo.GetTableIDsByBooking(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get assignments for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - assignments error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, tableIDs), nil
}

// GetTableBookings получает бронирования стола на дату
func (s *Service) GetTableBookings(ctx context.Context, tableID int64, date time.Time, includeInactive bool) (*models.BookingListResponse, error) {
	if tableID <= 0 {
		return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTableAndDate(ctx, domain.TableBookingsFilter{
		TableID:         tableID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		s.logger.Error("GetTableBookings: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: GetTableBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTableBookings: fetched %d bookings for table=%d, date=%s",
		len(bookings), tableID, date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// Release освобождает все столы бронирования
// Валидация не нужна: удаление назначений не может породить конфликт,
// производный основной стол исчезает вместе со связью
func (s *Service) Release(ctx context.Context, bookingID int64) error {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Release: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Release: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	if err := s.assignmentRepo.DeleteByBooking(ctx, bookingID); err != nil {
		s.logger.Error("Release: failed to delete assignments for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Release - delete assignments: %v", ErrInternal, err)
	}

	s.logger.Info("Release: booking id=%d released all tables", bookingID)
	return nil
}

// Cancel переводит бронирование в терминальный статус (cancelled или no_show)
// Терминальный статус убирает бронирование из всех проверок пересечений
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	if status != domain.StatusCancelled && status != domain.StatusNoShow {
		return fmt.Errorf("%w: cancel requires a terminal status", ErrInvalidStatus)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, status, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - update error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled with status=%s", bookingID, status)
	return nil
}

// UpdateDiningStatus обновляет статус рассадки с проверкой допустимости перехода
func (s *Service) UpdateDiningStatus(ctx context.Context, bookingID int64, newStatus string) error {
	status, err := models.ToDomainDiningStatus(newStatus)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateDiningStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateDiningStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateDiningStatus - repository error: %v", ErrInternal, err)
	}

	if !transitionAllowed(booking.DiningStatus, status) {
		s.logger.Warn("UpdateDiningStatus: booking id=%d transition %s -> %s not allowed",
			bookingID, booking.DiningStatus, status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.DiningStatus, status)
	}

	if err := s.bookingRepo.UpdateDiningStatus(ctx, bookingID, status); err != nil {
		s.logger.Error("UpdateDiningStatus: failed to update booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateDiningStatus - update error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDiningStatus: booking id=%d dining status set to %s", bookingID, status)
	return nil
}

// transitionAllowed проверяет допустимость перехода статуса рассадки
func transitionAllowed(from, to domain.DiningStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range diningTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
