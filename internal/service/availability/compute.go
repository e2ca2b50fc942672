package availability

import (
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// computeAvailability разбивает инвентарь столов на свободные и занятые.
//
// Правила по дате:
//   - прошедший день: все столы свободны (все интервалы уже закончились)
//   - будущий день: зависит от FutureDayPolicy конфигурации
//   - сегодня: интервалы, закончившиеся до "сейчас", не учитываются;
//     стол занят, только если проверяемый момент/интервал задевает
//     один из оставшихся интервалов (промежуток до следующего
//     бронирования оставляет стол свободным)
//
// start нулевой ⇒ проверка на текущий момент; end nil ⇒ start + default.
func computeAvailability(
	tables []*domain.Table,
	bookingsByTable map[int64][]*domain.Booking,
	date time.Time,
	now time.Time,
	config *domain.ScheduleConfig,
	start types.TimeString,
	end *types.TimeString,
) *Result {
	result := &Result{
		Date:     date,
		Free:     make([]*domain.Table, 0, len(tables)),
		Reserved: make([]*ReservedTable, 0),
	}

	// Прошедший день: все интервалы закончились, проверять нечего
	if isDateInPast(date, now) {
		result.Free = append(result.Free, tables...)
		return result
	}

	checkEnd := effectiveEnd(start, end, config.DefaultDurationMinutes)

	for _, table := range tables {
		bookings := bookingsByTable[table.ID]

		if !isSameDay(date, now) {
			free, reserved := futureDayState(table, bookings, config, start, checkEnd)
			if reserved != nil {
				result.Reserved = append(result.Reserved, reserved)
			}
			if free {
				result.Free = append(result.Free, table)
			}
			continue
		}

		free, reserved := todayState(table, bookings, now, config.DefaultDurationMinutes, start, checkEnd)
		if reserved != nil {
			result.Reserved = append(result.Reserved, reserved)
		}
		if free {
			result.Free = append(result.Free, table)
		}
	}

	return result
}

// futureDayState вычисляет состояние стола для будущего дня
//
// Оптимистичная политика: стол с бронированиями показывается как занятый
// (со своими интервалами), но остается и в списке свободных - между
// бронированиями предполагаются промежутки. Строгая политика: применяется
// та же проверка пересечения интервалов, что и для сегодняшнего дня.
func futureDayState(
	table *domain.Table,
	bookings []*domain.Booking,
	config *domain.ScheduleConfig,
	start types.TimeString,
	checkEnd types.TimeString,
) (bool, *ReservedTable) {
	if len(bookings) == 0 {
		return true, nil
	}

	reserved := &ReservedTable{Table: table, Bookings: bookings}

	if config.FutureDayPolicy == domain.FuturePolicyStrict && !start.IsZero() {
		conflict := domain.FindConflict(bookings, start, checkEnd, nil, config.DefaultDurationMinutes)
		return conflict == nil, reserved
	}

	return true, reserved
}

// todayState вычисляет состояние стола на сегодня
// Учитываются только интервалы, чей конец еще не прошел
func todayState(
	table *domain.Table,
	bookings []*domain.Booking,
	now time.Time,
	defaultMinutes int,
	start types.TimeString,
	checkEnd types.TimeString,
) (bool, *ReservedTable) {
	nowTime := types.NewTimeString(now)

	remaining := make([]*domain.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.EndsAfter(nowTime, defaultMinutes) {
			remaining = append(remaining, booking)
		}
	}

	if len(remaining) == 0 {
		return true, nil
	}

	var occupied bool
	if start.IsZero() {
		// Момент "сейчас": стол занят, только если текущее время
		// попадает в один из оставшихся интервалов
		for _, booking := range remaining {
			if booking.CoversTime(nowTime, defaultMinutes) {
				occupied = true
				break
			}
		}
	} else {
		occupied = domain.FindConflict(remaining, start, checkEnd, nil, defaultMinutes) != nil
	}

	if occupied {
		return false, &ReservedTable{Table: table, Bookings: remaining}
	}
	return true, nil
}

// groupByTable группирует пары "стол - бронирование" по столам
func groupByTable(assigned []*domain.TableBooking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking, len(assigned))
	for _, tb := range assigned {
		grouped[tb.TableID] = append(grouped[tb.TableID], tb.Booking)
	}
	return grouped
}

// effectiveEnd возвращает конец интервала, подставляя start + default при отсутствии
func effectiveEnd(start types.TimeString, end *types.TimeString, defaultMinutes int) types.TimeString {
	if end != nil && !end.IsZero() {
		return *end
	}
	return types.FromMinutes(start.Minutes() + defaultMinutes)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
