package quick_seat

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("quick_seat: table not found")

	// ErrTableInactive возвращается, когда стол выведен из оборота
	ErrTableInactive = errors.New("quick_seat: table is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quick_seat: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quick_seat: internal error")
)
