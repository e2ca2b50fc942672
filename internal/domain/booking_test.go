package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

func TestEffectiveEnd(t *testing.T) {
	t.Run("явный конец возвращается как есть", func(t *testing.T) {
		b := &Booking{StartTime: "10:00", EndTime: ptr.Ptr(types.TimeString("13:30"))}
		assert.Equal(t, "13:30", b.EffectiveEnd(120).String())
	})

	t.Run("без конца подставляется start + default", func(t *testing.T) {
		b := &Booking{StartTime: "20:00"}
		assert.Equal(t, "22:00", b.EffectiveEnd(120).String())
	})

	t.Run("конец за полночь заворачивается", func(t *testing.T) {
		b := &Booking{StartTime: "23:00"}
		assert.Equal(t, "01:00", b.EffectiveEnd(120).String())
	})

	t.Run("конец равный началу заменяется дефолтом", func(t *testing.T) {
		b := &Booking{StartTime: "18:00", EndTime: ptr.Ptr(types.TimeString("18:00"))}
		assert.Equal(t, "20:00", b.EffectiveEnd(120).String())
	})
}

func TestCoversTime(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: ptr.Ptr(types.TimeString("12:00"))}

	assert.True(t, b.CoversTime("10:00", 120), "начало включается")
	assert.True(t, b.CoversTime("11:59", 120))
	assert.False(t, b.CoversTime("12:00", 120), "конец исключается")
	assert.False(t, b.CoversTime("09:59", 120))

	t.Run("конец за полночью накрывает вечер своего дня", func(t *testing.T) {
		late := &Booking{StartTime: "23:30", EndTime: ptr.Ptr(types.TimeString("01:30"))}

		assert.True(t, late.CoversTime("23:45", 120))
		assert.False(t, late.CoversTime("23:00", 120))
		// Хвост после полуночи относится уже к следующему дню
		assert.False(t, late.CoversTime("01:00", 120))
	})
}

func TestEndsAfter(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: ptr.Ptr(types.TimeString("12:00"))}
	assert.True(t, b.EndsAfter("11:00", 120))
	assert.False(t, b.EndsAfter("12:00", 120))

	// Интервал через полночь не считается закончившимся вечером
	late := &Booking{StartTime: "23:30", EndTime: ptr.Ptr(types.TimeString("01:30"))}
	assert.True(t, late.EndsAfter("23:45", 120))
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusNew}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusNew}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}
