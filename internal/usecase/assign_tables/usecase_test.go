package assign_tables

import (
	"context"
	"errors"
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

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Table, error) {
	var result []*domain.Table
	for _, id := range ids {
		if table, ok := f.tables[id]; ok {
			result = append(result, table)
		}
	}
	return result, nil
}

type fakeAssignmentRepo struct {
	inserted map[int64][]int64
	deleted  []int64
}

func (f *fakeAssignmentRepo) Insert(_ context.Context, bookingID int64, tableIDs []int64) error {
	if f.inserted == nil {
		f.inserted = make(map[int64][]int64)
	}
	f.inserted[bookingID] = tableIDs
	return nil
}

func (f *fakeAssignmentRepo) DeleteByBooking(_ context.Context, bookingID int64) error {
	f.deleted = append(f.deleted, bookingID)
	return nil
}

type fakeScheduleRepo struct {
	config *domain.ScheduleConfig
}

func (f *fakeScheduleRepo) GetConfig(_ context.Context) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeTable(id int64) *domain.Table {
	return &domain.Table{ID: id, Number: int(id), Zone: domain.ZoneIndoor, Capacity: 4, IsActive: true}
}

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		SlotDurationMinutes:    30,
		DefaultDurationMinutes: 120,
		MaxGuestsPerSlot:       40,
		MaxTablesPerSlot:       10,
		FutureDayPolicy:        domain.FuturePolicyOptimistic,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, tables *fakeTableRepo, assignments *fakeAssignmentRepo) *UseCase {
	return NewUseCase(
		bookings,
		tables,
		assignments,
		&fakeScheduleRepo{config: testConfig()},
		&fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			5: {ID: 5, Status: domain.StatusConfirmed, StartTime: "20:00"},
		},
	}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		1: activeTable(1),
		2: activeTable(2),
	}}
	assignments := &fakeAssignmentRepo{}

	uc := newTestUseCase(bookings, tables, assignments)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		TableIDs:  []int64{1, 2},
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
	})
	require.NoError(t, err)

	// Без явного конца подставляется start + длительность по умолчанию
	assert.Equal(t, "22:00", resp.EndTime.String())
	require.NotNil(t, resp.PrimaryTableID)
	assert.Equal(t, int64(1), *resp.PrimaryTableID)

	assert.Equal(t, []int64{5}, assignments.deleted)
	assert.Equal(t, []int64{1, 2}, assignments.inserted[5])
	assert.Equal(t, "22:00", bookings.updatedEnd[5].String())
}

func TestExecute_Conflict(t *testing.T) {
	occupying := &domain.Booking{
		ID:           99,
		CustomerName: "Сидоров",
		StartTime:    "10:00",
		EndTime:      ptr.Ptr(types.TimeString("12:00")),
		Status:       domain.StatusConfirmed,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			5: {ID: 5, Status: domain.StatusNew, StartTime: "11:00"},
		},
		tableBookings: map[int64][]*domain.Booking{
			2: {occupying},
		},
	}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		1: activeTable(1),
		2: activeTable(2),
	}}
	assignments := &fakeAssignmentRepo{}

	uc := newTestUseCase(bookings, tables, assignments)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		TableIDs:  []int64{1, 2},
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
		EndTime:   ptr.Ptr(types.TimeString("13:00")),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(99), conflictErr.Conflict.BookingID)
	assert.Equal(t, int64(2), conflictErr.Conflict.TableID)
	assert.Equal(t, "Сидоров", conflictErr.Conflict.CustomerName)

	// Конфликт отклоняет запись целиком
	assert.Empty(t, assignments.inserted)
}

func TestExecute_SelfExclusion(t *testing.T) {
	// Бронирование уже сидит на столе 1; переназначение на тот же стол
	// не должно конфликтовать с самим собой
	self := &domain.Booking{
		ID:        5,
		StartTime: "20:00",
		EndTime:   ptr.Ptr(types.TimeString("22:00")),
		Status:    domain.StatusConfirmed,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{5: self},
		tableBookings: map[int64][]*domain.Booking{
			1: {self},
			2: {self},
		},
	}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		1: activeTable(1),
		2: activeTable(2),
	}}
	assignments := &fakeAssignmentRepo{}

	uc := newTestUseCase(bookings, tables, assignments)

	// Было [1, 2], становится [1]
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		TableIDs:  []int64{1},
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
		EndTime:   ptr.Ptr(types.TimeString("22:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.TableIDs)
	assert.Equal(t, []int64{1}, assignments.inserted[5])
}

func TestExecute_EmptyListClears(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			5: {ID: 5, Status: domain.StatusConfirmed, StartTime: "20:00"},
		},
	}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{}}
	assignments := &fakeAssignmentRepo{}

	uc := newTestUseCase(bookings, tables, assignments)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		TableIDs:  nil,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.TableIDs)
	assert.Nil(t, resp.PrimaryTableID)
	assert.Equal(t, []int64{5}, assignments.deleted)
	assert.Empty(t, assignments.inserted)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTableRepo{}, &fakeAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 404,
		TableIDs:  []int64{1},
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_TableInactive(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			5: {ID: 5, Status: domain.StatusConfirmed, StartTime: "20:00"},
		},
	}
	inactive := activeTable(1)
	inactive.IsActive = false
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{1: inactive}}

	uc := newTestUseCase(bookings, tables, &fakeAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		TableIDs:  []int64{1},
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
	})
	assert.ErrorIs(t, err, ErrTableInactive)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTableRepo{}, &fakeAssignmentRepo{})
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой bookingID", &Request{TableIDs: []int64{1}, Date: date, StartTime: "20:00"}},
		{"без даты", &Request{BookingID: 5, TableIDs: []int64{1}, StartTime: "20:00"}},
		{"без времени начала", &Request{BookingID: 5, TableIDs: []int64{1}, Date: date}},
		{"конец раньше начала", &Request{BookingID: 5, TableIDs: []int64{1}, Date: date,
			StartTime: "20:00", EndTime: ptr.Ptr(types.TimeString("19:00"))}},
		{"дубликат стола", &Request{BookingID: 5, TableIDs: []int64{1, 1}, Date: date, StartTime: "20:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}
}
