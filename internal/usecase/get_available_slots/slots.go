package get_available_slots

import (
	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

const minutesPerDay = 24 * 60

// generateSlotTimes генерирует времена начала слотов по периодам работы дня.
// Слот попадает в выдачу, только если целиком помещается до закрытия периода.
// Период, закрывающийся после полуночи ("18:00"-"01:00"), разворачивается
// через границу суток
func generateSlotTimes(periods []domain.ServicePeriod, stepMinutes int) []types.TimeString {
	if stepMinutes <= 0 {
		return nil
	}

	var slotTimes []types.TimeString
	for _, period := range periods {
		openMinutes := period.Open.Minutes()
		closeMinutes := period.Close.Minutes()
		if closeMinutes <= openMinutes {
			closeMinutes += minutesPerDay
		}

		for m := openMinutes; m+stepMinutes <= closeMinutes; m += stepMinutes {
			slotTimes = append(slotTimes, types.FromMinutes(m))
		}
	}
	return slotTimes
}

// annotateSlots размечает слоты остаточной вместимостью по бронированиям дня.
// Бронирование относится к слоту только при точном совпадении времени начала:
// агрегатные потолки ограничивают количество посадок, стартующих одновременно
func annotateSlots(
	slotTimes []types.TimeString,
	bookings []*domain.Booking,
	config *domain.ScheduleConfig,
	requestedGuests int,
) []domain.Slot {
	guestsByStart := make(map[types.TimeString]int, len(bookings))
	countByStart := make(map[types.TimeString]int, len(bookings))
	for _, booking := range bookings {
		guestsByStart[booking.StartTime] += booking.GuestCount
		countByStart[booking.StartTime]++
	}

	slots := make([]domain.Slot, 0, len(slotTimes))
	for _, startTime := range slotTimes {
		remainingGuests := config.MaxGuestsPerSlot - guestsByStart[startTime]
		if remainingGuests < 0 {
			remainingGuests = 0
		}
		remainingTables := config.MaxTablesPerSlot - countByStart[startTime]
		if remainingTables < 0 {
			remainingTables = 0
		}

		slots = append(slots, domain.Slot{
			StartTime:       startTime,
			DurationMinutes: config.SlotDurationMinutes,
			Available:       remainingGuests >= requestedGuests && remainingTables > 0,
			RemainingGuests: remainingGuests,
			RemainingTables: remainingTables,
		})
	}
	return slots
}

// dropPastSlots отбрасывает слоты, начало которых уже наступило
func dropPastSlots(slotTimes []types.TimeString, now types.TimeString) []types.TimeString {
	filtered := make([]types.TimeString, 0, len(slotTimes))
	for _, slotTime := range slotTimes {
		if slotTime.IsAfter(now) {
			filtered = append(filtered, slotTime)
		}
	}
	return filtered
}
