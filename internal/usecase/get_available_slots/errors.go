package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDateInPast возвращается, когда запрошена прошедшая дата
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrDateOutsideWindow возвращается, когда дата за пределами окна бронирования
	ErrDateOutsideWindow = errors.New("get_available_slots: date is outside the booking window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
