package extend_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	tableBookings map[int64][]*domain.Booking
	updatedEnd    map[int64]types.TimeString
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByTableAndDate(_ context.Context, filter domain.TableBookingsFilter) ([]*domain.Booking, error) {
	return f.tableBookings[filter.TableID], nil
}

func (f *fakeBookingRepo) UpdateEndTime(_ context.Context, id int64, endTime types.TimeString) error {
	if f.updatedEnd == nil {
		f.updatedEnd = make(map[int64]types.TimeString)
	}
	f.updatedEnd[id] = endTime
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[int64][]int64
}

func (f *fakeAssignmentRepo) GetTableIDsByBooking(_ context.Context, bookingID int64) ([]int64, error) {
	return f.assignments[bookingID], nil
}

type fakeScheduleRepo struct{}

func (f *fakeScheduleRepo) GetConfig(_ context.Context) (*domain.ScheduleConfig, error) {
	return &domain.ScheduleConfig{
		SlotDurationMinutes:    30,
		DefaultDurationMinutes: 120,
		MaxGuestsPerSlot:       40,
		MaxTablesPerSlot:       10,
		FutureDayPolicy:        domain.FuturePolicyOptimistic,
	}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, assignments *fakeAssignmentRepo) *UseCase {
	return NewUseCase(bookings, assignments, &fakeScheduleRepo{}, &fakeTxManager{}, nopLogger{})
}

func extendable(id int64, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString(start),
		EndTime:     ptr.Ptr(types.TimeString(end)),
		Status:      domain.StatusConfirmed,
	}
}

func TestExecute_Success(t *testing.T) {
	self := extendable(5, "10:00", "12:00")
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{5: self},
		tableBookings: map[int64][]*domain.Booking{
			1: {self},
		},
	}
	assignments := &fakeAssignmentRepo{assignments: map[int64][]int64{5: {1}}}

	uc := newTestUseCase(bookings, assignments)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "13:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "13:00", resp.EndTime.String())
	assert.Equal(t, []int64{1}, resp.TableIDs)
	assert.Equal(t, "13:00", bookings.updatedEnd[5].String())
}

func TestExecute_ConflictWithNextBooking(t *testing.T) {
	self := extendable(5, "10:00", "12:00")
	next := &domain.Booking{
		ID:           7,
		CustomerName: "Козлов",
		StartTime:    "12:30",
		EndTime:      ptr.Ptr(types.TimeString("14:00")),
		Status:       domain.StatusConfirmed,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{5: self},
		tableBookings: map[int64][]*domain.Booking{
			1: {self, next},
		},
	}
	assignments := &fakeAssignmentRepo{assignments: map[int64][]int64{5: {1}}}

	uc := newTestUseCase(bookings, assignments)

	// 13:00 задевает бронирование 12:30-14:00
	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "13:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(7), conflictErr.Conflict.BookingID)
	assert.Equal(t, "Козлов", conflictErr.Conflict.CustomerName)

	assert.Empty(t, bookings.updatedEnd)

	// Продление встык до начала соседнего бронирования проходит
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "12:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "12:30", resp.EndTime.String())
}

func TestExecute_ChecksAllAssignedTables(t *testing.T) {
	// Бронирование на два стола: конфликт на втором столе блокирует продление
	self := extendable(5, "10:00", "12:00")
	other := &domain.Booking{
		ID:        8,
		StartTime: "12:00",
		EndTime:   ptr.Ptr(types.TimeString("14:00")),
		Status:    domain.StatusConfirmed,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{5: self},
		tableBookings: map[int64][]*domain.Booking{
			1: {self},
			2: {self, other},
		},
	}
	assignments := &fakeAssignmentRepo{assignments: map[int64][]int64{5: {1, 2}}}

	uc := newTestUseCase(bookings, assignments)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "12:30",
	})
	require.Error(t, err)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(2), conflictErr.Conflict.TableID)
}

func TestExecute_TableNotAssigned(t *testing.T) {
	self := extendable(5, "10:00", "12:00")
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{5: self}}
	assignments := &fakeAssignmentRepo{assignments: map[int64][]int64{5: {1}}}

	uc := newTestUseCase(bookings, assignments)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    3,
		NewEndTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrTableNotAssigned)
}

func TestExecute_BookingInactive(t *testing.T) {
	cancelled := extendable(5, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{5: cancelled}}

	uc := newTestUseCase(bookings, &fakeAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrBookingInactive)
}

func TestExecute_NewEndBeforeStart(t *testing.T) {
	self := extendable(5, "18:00", "20:00")
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{5: self}}
	assignments := &fakeAssignmentRepo{assignments: map[int64][]int64{5: {1}}}

	uc := newTestUseCase(bookings, assignments)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  5,
		TableID:    1,
		NewEndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  404,
		TableID:    1,
		NewEndTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
