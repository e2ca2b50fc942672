package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

func TestPeriods(t *testing.T) {
	t.Run("обед и ужин", func(t *testing.T) {
		day := DayHours{
			Weekday:     time.Friday,
			LunchOpen:   ptr.Ptr(types.TimeString("12:00")),
			LunchClose:  ptr.Ptr(types.TimeString("15:00")),
			DinnerOpen:  ptr.Ptr(types.TimeString("18:00")),
			DinnerClose: ptr.Ptr(types.TimeString("23:00")),
		}

		periods := day.Periods()
		require.Len(t, periods, 2)
		assert.Equal(t, "12:00", periods[0].Open.String())
		assert.Equal(t, "15:00", periods[0].Close.String())
		assert.Equal(t, "18:00", periods[1].Open.String())
		assert.Equal(t, "23:00", periods[1].Close.String())
	})

	t.Run("только обед", func(t *testing.T) {
		day := DayHours{
			Weekday:    time.Monday,
			LunchOpen:  ptr.Ptr(types.TimeString("12:00")),
			LunchClose: ptr.Ptr(types.TimeString("16:00")),
		}
		assert.Len(t, day.Periods(), 1)
	})

	t.Run("закрытый день без периодов", func(t *testing.T) {
		day := DayHours{
			Weekday:    time.Sunday,
			IsClosed:   true,
			LunchOpen:  ptr.Ptr(types.TimeString("12:00")),
			LunchClose: ptr.Ptr(types.TimeString("16:00")),
		}
		assert.Empty(t, day.Periods())
	})
}

func TestHoursForDay(t *testing.T) {
	hours := []DayHours{
		{Weekday: time.Monday, LunchOpen: ptr.Ptr(types.TimeString("12:00")), LunchClose: ptr.Ptr(types.TimeString("16:00"))},
		{Weekday: time.Sunday, IsClosed: true},
	}

	monday := HoursForDay(hours, time.Monday)
	assert.False(t, monday.IsClosed)

	sunday := HoursForDay(hours, time.Sunday)
	assert.True(t, sunday.IsClosed)

	// Ненастроенный день считается закрытым
	tuesday := HoursForDay(hours, time.Tuesday)
	assert.True(t, tuesday.IsClosed)
}

func TestFutureDayPolicyIsValid(t *testing.T) {
	assert.True(t, FuturePolicyOptimistic.IsValid())
	assert.True(t, FuturePolicyStrict.IsValid())
	assert.False(t, FutureDayPolicy("pessimistic").IsValid())
}
