package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

var testConfig = &domain.ScheduleConfig{
	SlotDurationMinutes:    30,
	DefaultDurationMinutes: 120,
	MaxGuestsPerSlot:       40,
	MaxTablesPerSlot:       10,
	FutureDayPolicy:        domain.FuturePolicyOptimistic,
}

func table(id int64) *domain.Table {
	return &domain.Table{ID: id, Number: int(id), Zone: domain.ZoneIndoor, Capacity: 4, IsActive: true}
}

func booking(id int64, start, end string) *domain.Booking {
	b := &domain.Booking{
		ID:           id,
		CustomerName: "Гость",
		GuestCount:   2,
		StartTime:    types.TimeString(start),
		Status:       domain.StatusConfirmed,
	}
	if end != "" {
		b.EndTime = ptr.Ptr(types.TimeString(end))
	}
	return b
}

func TestComputeAvailability_PastDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	tables := []*domain.Table{table(1), table(2)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "12:00", "14:00")},
	}

	result := computeAvailability(tables, byTable, yesterday, now, testConfig, "", nil)

	// Прошедший день: все интервалы закончились, все столы свободны
	assert.Len(t, result.Free, 2)
	assert.Empty(t, result.Reserved)
}

func TestComputeAvailability_TodayMoment(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	tables := []*domain.Table{table(1), table(2), table(3)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "12:00", "14:00")}, // Сейчас внутри интервала
		2: {booking(11, "10:00", "12:00")}, // Интервал уже закончился
		3: {booking(12, "19:00", "21:00")}, // Интервал еще не начался
	}

	result := computeAvailability(tables, byTable, now, now, testConfig, "", nil)

	require.Len(t, result.Reserved, 1)
	assert.Equal(t, int64(1), result.Reserved[0].Table.ID)

	freeIDs := tableIDs(result.Free)
	assert.ElementsMatch(t, []int64{2, 3}, freeIDs)
}

func TestComputeAvailability_TodayInterval(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	tables := []*domain.Table{table(1), table(2)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "18:00", "20:00")},
		2: {booking(11, "21:00", "23:00")},
	}

	// Запрошенный интервал 19:00-21:00 задевает стол 1, но не стол 2 (встык)
	result := computeAvailability(tables, byTable, now, now, testConfig, types.TimeString("19:00"), ptr.Ptr(types.TimeString("21:00")))

	require.Len(t, result.Reserved, 1)
	assert.Equal(t, int64(1), result.Reserved[0].Table.ID)
	assert.ElementsMatch(t, []int64{2}, tableIDs(result.Free))
}

func TestComputeAvailability_TodayOvernightInterval(t *testing.T) {
	// Поздняя посадка 23:30-01:30: в 23:45 стол все еще занят,
	// интервал с концом за полночью не считается закончившимся
	now := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)

	tables := []*domain.Table{table(1), table(2)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "23:30", "01:30")},
		2: {booking(11, "20:00", "22:00")},
	}

	result := computeAvailability(tables, byTable, now, now, testConfig, "", nil)

	require.Len(t, result.Reserved, 1)
	assert.Equal(t, int64(1), result.Reserved[0].Table.ID)
	assert.ElementsMatch(t, []int64{2}, tableIDs(result.Free))
}

func TestComputeAvailability_FutureOptimistic(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	tables := []*domain.Table{table(1), table(2)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "19:00", "21:00")},
	}

	result := computeAvailability(tables, byTable, tomorrow, now, testConfig, types.TimeString("19:00"), ptr.Ptr(types.TimeString("21:00")))

	// Оптимистичная политика: стол с бронированиями показывается занятым,
	// но остается и свободным - между бронированиями есть промежутки
	require.Len(t, result.Reserved, 1)
	assert.Equal(t, int64(1), result.Reserved[0].Table.ID)
	assert.ElementsMatch(t, []int64{1, 2}, tableIDs(result.Free))
}

func TestComputeAvailability_FutureStrict(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	strictConfig := &domain.ScheduleConfig{
		SlotDurationMinutes:    30,
		DefaultDurationMinutes: 120,
		MaxGuestsPerSlot:       40,
		MaxTablesPerSlot:       10,
		FutureDayPolicy:        domain.FuturePolicyStrict,
	}

	tables := []*domain.Table{table(1), table(2)}
	byTable := map[int64][]*domain.Booking{
		1: {booking(10, "19:00", "21:00")},
	}

	// Строгая политика: пересекающийся интервал делает стол занятым
	result := computeAvailability(tables, byTable, tomorrow, now, strictConfig, types.TimeString("20:00"), ptr.Ptr(types.TimeString("22:00")))

	require.Len(t, result.Reserved, 1)
	assert.ElementsMatch(t, []int64{2}, tableIDs(result.Free))

	// Непересекающийся интервал оставляет стол свободным
	result = computeAvailability(tables, byTable, tomorrow, now, strictConfig, types.TimeString("12:00"), ptr.Ptr(types.TimeString("14:00")))
	assert.ElementsMatch(t, []int64{1, 2}, tableIDs(result.Free))
}

func TestGroupByTable(t *testing.T) {
	shared := booking(10, "19:00", "21:00")
	assigned := []*domain.TableBooking{
		{TableID: 1, Booking: shared},
		{TableID: 2, Booking: shared},
		{TableID: 1, Booking: booking(11, "12:00", "14:00")},
	}

	grouped := groupByTable(assigned)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
}

func tableIDs(tables []*domain.Table) []int64 {
	ids := make([]int64, len(tables))
	for i, tbl := range tables {
		ids[i] = tbl.ID
	}
	return ids
}
