package quick_seat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	tableRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/table"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

type fakeBookingRepo struct {
	created *domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = f.nextID
	f.created = &created
	return &created, nil
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	table, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return table, nil
}

type fakeAssignmentRepo struct {
	inserted map[int64][]int64
}

func (f *fakeAssignmentRepo) Insert(_ context.Context, bookingID int64, tableIDs []int64) error {
	if f.inserted == nil {
		f.inserted = make(map[int64][]int64)
	}
	f.inserted[bookingID] = tableIDs
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, tables *fakeTableRepo, assignments *fakeAssignmentRepo, now time.Time) *UseCase {
	return NewUseCase(bookings, tables, assignments, &fakeTxManager{}, &fixedTime{now: now}, nopLogger{})
}

func TestExecute_Defaults(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 42}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Number: 3, Zone: domain.ZoneIndoor, Capacity: 4, IsActive: true},
	}}
	assignments := &fakeAssignmentRepo{}

	// 18:37 округляется вниз до 18:30
	now := time.Date(2026, 3, 14, 18, 37, 12, 0, time.UTC)
	uc := newTestUseCase(bookings, tables, assignments, now)

	resp, err := uc.Execute(context.Background(), &Request{TableID: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, int64(3), resp.TableID)
	assert.Equal(t, "Walk-in", resp.CustomerName)
	assert.Equal(t, domain.QuickSeatGuestCount, resp.GuestCount)
	assert.Equal(t, types.TimeString("18:30"), resp.StartTime)
	assert.Equal(t, types.TimeString("20:30"), resp.EndTime)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.DiningSeated, resp.DiningStatus)

	// Бронирование и привязка стола созданы
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.DiningSeated, bookings.created.DiningStatus)
	assert.Equal(t, []int64{3}, assignments.inserted[42])
}

func TestExecute_Rounding(t *testing.T) {
	tests := []struct {
		clock    string
		expected string
	}{
		{"12:00", "12:00"},
		{"12:01", "12:00"},
		{"12:14", "12:00"},
		{"12:15", "12:15"},
		{"12:44", "12:30"},
		{"12:59", "12:45"},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			parsed, err := time.Parse("15:04", tt.clock)
			require.NoError(t, err)
			assert.Equal(t, types.TimeString(tt.expected), roundDownToQuarter(parsed))
		})
	}
}

func TestExecute_ExplicitValues(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 43}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Number: 3, Zone: domain.ZoneGarden, Capacity: 6, IsActive: true},
	}}
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, tables, &fakeAssignmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID:         3,
		CustomerName:    "Смирнов",
		GuestCount:      4,
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	assert.Equal(t, "Смирнов", resp.CustomerName)
	assert.Equal(t, 4, resp.GuestCount)
	assert.Equal(t, types.TimeString("19:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("20:30"), resp.EndTime)
}

func TestExecute_TableNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTableRepo{}, &fakeAssignmentRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{TableID: 404})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TableInactive(t *testing.T) {
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Number: 3, Zone: domain.ZoneIndoor, Capacity: 4, IsActive: false},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, tables, &fakeAssignmentRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{TableID: 3})
	assert.ErrorIs(t, err, ErrTableInactive)
}
