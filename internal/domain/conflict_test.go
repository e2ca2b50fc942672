package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/pkg/types"
	"github.com/m04kA/SMC-TableService/pkg/ptr"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"полное пересечение", "10:00", "12:00", "10:30", "11:30", true},
		{"частичное пересечение", "10:00", "12:00", "11:00", "13:00", true},
		{"без пересечения", "10:00", "12:00", "13:00", "14:00", false},
		{"встык: конец равен началу", "10:00", "12:00", "12:00", "14:00", false},
		{"встык: начало равно концу", "12:00", "14:00", "10:00", "12:00", false},
		{"совпадающие интервалы", "10:00", "12:00", "10:00", "12:00", true},
		{"касание одной минутой", "10:00", "12:01", "12:00", "14:00", true},
		{"конец за полночью накрывает поздний вечер", "23:30", "01:30", "22:00", "23:45", true},
		{"конец за полночью не задевает ранний вечер", "23:30", "01:30", "21:00", "22:30", false},
		{"встык перед интервалом через полночь", "23:30", "01:30", "22:00", "23:30", false},
		{"оба интервала через полночь", "23:00", "01:00", "23:30", "00:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(ts(t, tt.aStart), ts(t, tt.aEnd), ts(t, tt.bStart), ts(t, tt.bEnd))
			assert.Equal(t, tt.expected, got)

			// Пересечение симметрично
			mirrored := Overlaps(ts(t, tt.bStart), ts(t, tt.bEnd), ts(t, tt.aStart), ts(t, tt.aEnd))
			assert.Equal(t, tt.expected, mirrored)
		})
	}
}

func TestFindConflict(t *testing.T) {
	booking := &Booking{
		ID:           1,
		CustomerName: "Иванов",
		StartTime:    "10:00",
		EndTime:      ptr.Ptr(types.TimeString("12:00")),
		Status:       StatusConfirmed,
	}

	t.Run("пересекающийся интервал находит бронирование", func(t *testing.T) {
		got := FindConflict([]*Booking{booking}, ts(t, "11:00"), ts(t, "13:00"), nil, 120)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("интервал встык свободен", func(t *testing.T) {
		got := FindConflict([]*Booking{booking}, ts(t, "12:00"), ts(t, "14:00"), nil, 120)
		assert.Nil(t, got)
	})

	t.Run("исключение собственного бронирования", func(t *testing.T) {
		got := FindConflict([]*Booking{booking}, ts(t, "11:00"), ts(t, "13:00"), ptr.Ptr(int64(1)), 120)
		assert.Nil(t, got)
	})

	t.Run("отмененные бронирования не учитываются", func(t *testing.T) {
		cancelled := &Booking{
			ID:        2,
			StartTime: "10:00",
			EndTime:   ptr.Ptr(types.TimeString("12:00")),
			Status:    StatusCancelled,
		}
		noShow := &Booking{
			ID:        3,
			StartTime: "10:00",
			EndTime:   ptr.Ptr(types.TimeString("12:00")),
			Status:    StatusNoShow,
		}
		got := FindConflict([]*Booking{cancelled, noShow}, ts(t, "10:30"), ts(t, "11:30"), nil, 120)
		assert.Nil(t, got)
	})

	t.Run("без явного конца используется длительность по умолчанию", func(t *testing.T) {
		open := &Booking{
			ID:        4,
			StartTime: "18:00",
			Status:    StatusNew,
		}
		// 18:00 + 120 минут = 20:00
		got := FindConflict([]*Booking{open}, ts(t, "19:30"), ts(t, "20:30"), nil, 120)
		require.NotNil(t, got)
		assert.Equal(t, int64(4), got.ID)

		got = FindConflict([]*Booking{open}, ts(t, "20:00"), ts(t, "21:00"), nil, 120)
		assert.Nil(t, got)
	})

	t.Run("поздняя посадка с концом за полночью занимает вечер", func(t *testing.T) {
		late := &Booking{
			ID:        5,
			StartTime: "23:30",
			EndTime:   ptr.Ptr(types.TimeString("01:30")),
			Status:    StatusConfirmed,
		}
		got := FindConflict([]*Booking{late}, ts(t, "23:45"), ts(t, "00:45"), nil, 120)
		require.NotNil(t, got)
		assert.Equal(t, int64(5), got.ID)

		got = FindConflict([]*Booking{late}, ts(t, "22:00"), ts(t, "23:30"), nil, 120)
		assert.Nil(t, got)
	})
}

func TestNewConflictInfo(t *testing.T) {
	booking := &Booking{
		ID:           7,
		CustomerName: "Петрова",
		StartTime:    "19:00",
		Status:       StatusConfirmed,
	}

	info := NewConflictInfo(3, booking, 120)
	assert.Equal(t, int64(7), info.BookingID)
	assert.Equal(t, int64(3), info.TableID)
	assert.Equal(t, "Петрова", info.CustomerName)
	assert.Equal(t, "19:00", info.StartTime.String())
	assert.Equal(t, "21:00", info.EndTime.String())
}
