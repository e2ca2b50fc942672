package schedule

import "errors"

var (
	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("schedule service: invalid slot duration")

	// ErrInvalidDefaultDuration возвращается при недопустимой длительности бронирования по умолчанию
	ErrInvalidDefaultDuration = errors.New("schedule service: invalid default booking duration")

	// ErrInvalidCapacity возвращается при недопустимых потолках вместимости слота
	ErrInvalidCapacity = errors.New("schedule service: invalid slot capacity ceilings")

	// ErrInvalidPolicy возвращается при неизвестной политике будущих дней
	ErrInvalidPolicy = errors.New("schedule service: invalid future day policy")

	// ErrInvalidHours возвращается при некорректных рабочих часах
	ErrInvalidHours = errors.New("schedule service: invalid operating hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
