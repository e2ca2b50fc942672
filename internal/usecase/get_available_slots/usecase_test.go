package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	config *domain.ScheduleConfig
	hours  []domain.DayHours
}

func (f *fakeScheduleRepo) GetConfig(_ context.Context) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

func (f *fakeScheduleRepo) GetOperatingHours(_ context.Context) ([]domain.DayHours, error) {
	return f.hours, nil
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

var testConfig = &domain.ScheduleConfig{
	SlotDurationMinutes:    30,
	DefaultDurationMinutes: 120,
	MaxGuestsPerSlot:       10,
	MaxTablesPerSlot:       3,
	FutureDayPolicy:        domain.FuturePolicyOptimistic,
}

// Вторник 2026-03-17: обед 12:00-14:00, ужин 18:00-20:00
func tuesdayHours() []domain.DayHours {
	return []domain.DayHours{{
		Weekday:     time.Tuesday,
		LunchOpen:   ptr.Ptr(types.TimeString("12:00")),
		LunchClose:  ptr.Ptr(types.TimeString("14:00")),
		DinnerOpen:  ptr.Ptr(types.TimeString("18:00")),
		DinnerClose: ptr.Ptr(types.TimeString("20:00")),
	}}
}

func slotStarts(slots []domain.Slot) []types.TimeString {
	starts := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.StartTime)
	}
	return starts
}

func TestExecute_FutureDay(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: testConfig, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, GuestCount: 2})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Equal(t,
		[]types.TimeString{"12:00", "12:30", "13:00", "13:30", "18:00", "18:30", "19:00", "19:30"},
		slotStarts(resp.Slots))
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_TodayDropsElapsedSlots(t *testing.T) {
	// Сейчас 2026-03-17 13:00 - обеденные слоты до этого момента не предлагаются
	now := time.Date(2026, 3, 17, 13, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: testConfig, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: now, GuestCount: 2})
	require.NoError(t, err)

	assert.Equal(t,
		[]types.TimeString{"13:30", "18:00", "18:30", "19:00", "19:30"},
		slotStarts(resp.Slots))
}

func TestExecute_PastDayReturnsEmpty(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: testConfig, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	// Понедельник не настроен в расписании - ресторан закрыт
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: testConfig, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookingsReduceCapacity(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "18:00", GuestCount: 6},
		{ID: 2, StartTime: "18:00", GuestCount: 3},
	}}

	uc := NewUseCase(
		bookings,
		&fakeScheduleRepo{config: testConfig, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, GuestCount: 2})
	require.NoError(t, err)

	byStart := make(map[types.TimeString]domain.Slot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	dinner := byStart["18:00"]
	assert.Equal(t, 1, dinner.RemainingGuests)
	assert.Equal(t, 1, dinner.RemainingTables)
	assert.False(t, dinner.Available)

	// Соседний слот не затронут
	assert.True(t, byStart["18:30"].Available)
}

func TestExecute_MissingConfigFallsBackToDefaults(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: nil, hours: tuesdayHours()},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: testConfig},
		&fixedTime{now: time.Now()},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: time.Now(), GuestCount: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
