package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

func period(t *testing.T, open, close string) domain.ServicePeriod {
	t.Helper()
	o, err := types.NewTimeStringFromString(open)
	require.NoError(t, err)
	c, err := types.NewTimeStringFromString(close)
	require.NoError(t, err)
	return domain.ServicePeriod{Open: o, Close: c}
}

func TestGenerateSlotTimes(t *testing.T) {
	t.Run("single period", func(t *testing.T) {
		slotTimes := generateSlotTimes([]domain.ServicePeriod{
			period(t, "12:00", "14:00"),
		}, 30)

		assert.Equal(t, []types.TimeString{"12:00", "12:30", "13:00", "13:30"}, slotTimes)
	})

	t.Run("slot must fit before close", func(t *testing.T) {
		// 13:15 + 30 минут не влезает до 13:40
		slotTimes := generateSlotTimes([]domain.ServicePeriod{
			period(t, "12:00", "13:40"),
		}, 30)

		assert.Equal(t, []types.TimeString{"12:00", "12:30", "13:00"}, slotTimes)
	})

	t.Run("lunch and dinner", func(t *testing.T) {
		slotTimes := generateSlotTimes([]domain.ServicePeriod{
			period(t, "12:00", "13:00"),
			period(t, "18:00", "19:30"),
		}, 30)

		assert.Equal(t, []types.TimeString{"12:00", "12:30", "18:00", "18:30", "19:00"}, slotTimes)
	})

	t.Run("overnight close wraps past midnight", func(t *testing.T) {
		slotTimes := generateSlotTimes([]domain.ServicePeriod{
			period(t, "23:00", "01:00"),
		}, 30)

		assert.Equal(t, []types.TimeString{"23:00", "23:30", "00:00", "00:30"}, slotTimes)
	})

	t.Run("zero step yields nothing", func(t *testing.T) {
		slotTimes := generateSlotTimes([]domain.ServicePeriod{
			period(t, "12:00", "14:00"),
		}, 0)

		assert.Nil(t, slotTimes)
	})
}

func TestAnnotateSlots(t *testing.T) {
	config := &domain.ScheduleConfig{
		SlotDurationMinutes: 30,
		MaxGuestsPerSlot:    10,
		MaxTablesPerSlot:    2,
	}
	slotTimes := []types.TimeString{"18:00", "18:30", "19:00"}

	t.Run("bookings count against their exact start time only", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: 1, StartTime: "18:00", GuestCount: 4},
			{ID: 2, StartTime: "18:00", GuestCount: 3},
		}

		slots := annotateSlots(slotTimes, bookings, config, 2)
		require.Len(t, slots, 3)

		assert.Equal(t, 3, slots[0].RemainingGuests)
		assert.Equal(t, 0, slots[0].RemainingTables)
		assert.False(t, slots[0].Available)

		// 18:30 не затронут бронированиями на 18:00
		assert.Equal(t, 10, slots[1].RemainingGuests)
		assert.Equal(t, 2, slots[1].RemainingTables)
		assert.True(t, slots[1].Available)
	})

	t.Run("guest ceiling blocks large parties", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: 1, StartTime: "19:00", GuestCount: 8},
		}

		slots := annotateSlots(slotTimes, bookings, config, 4)
		require.Len(t, slots, 3)

		// Осталось 2 места - на 4 гостей не хватает, но столы ещё есть
		assert.Equal(t, 2, slots[2].RemainingGuests)
		assert.Equal(t, 1, slots[2].RemainingTables)
		assert.False(t, slots[2].Available)
	})

	t.Run("overbooked slot clamps to zero", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: 1, StartTime: "18:00", GuestCount: 9},
			{ID: 2, StartTime: "18:00", GuestCount: 6},
			{ID: 3, StartTime: "18:00", GuestCount: 2},
		}

		slots := annotateSlots(slotTimes, bookings, config, 1)

		assert.Equal(t, 0, slots[0].RemainingGuests)
		assert.Equal(t, 0, slots[0].RemainingTables)
		assert.False(t, slots[0].Available)
	})

	t.Run("empty day is fully available", func(t *testing.T) {
		slots := annotateSlots(slotTimes, nil, config, 1)
		require.Len(t, slots, 3)
		for _, slot := range slots {
			assert.True(t, slot.Available)
			assert.Equal(t, config.SlotDurationMinutes, slot.DurationMinutes)
		}
	})
}

func TestDropPastSlots(t *testing.T) {
	slotTimes := []types.TimeString{"12:00", "12:30", "13:00"}

	filtered := dropPastSlots(slotTimes, types.TimeString("12:30"))

	// Слот ровно в текущий момент тоже отбрасывается
	assert.Equal(t, []types.TimeString{"13:00"}, filtered)
}
