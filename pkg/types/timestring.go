package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	timeFormat       = "15:04"
	minutesPerDay    = 24 * 60
	minutesPerHour   = 60
)

// TimeString время суток в формате "HH:MM"
// Используется для хранения времени начала/конца бронирования без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(s), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
// Значение нормализуется по модулю суток (переход через полночь)
func FromMinutes(minutes int) TimeString {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

// Validate проверяет корректность формата "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Некорректное значение трактуется как 0, переполнение нормализуется по модулю суток
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0
	}
	return (parsed.Hour()*minutesPerHour + parsed.Minute()) % minutesPerDay
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// При выходе за пределы суток время переносится на следующий день ("23:00" + 120 = "01:00")
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + minutes), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres возвращает TIME как "HH:MM:SS" - секунды отбрасываем
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types.TimeString: cannot scan %T", src)
	}

	if len(s) > len(timeFormat) {
		s = s[:len(timeFormat)]
	}
	*t = TimeString(s)
	return nil
}
