package create_join_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_join_request: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_join_request: booking not found")

	// ErrBookingInactive возвращается для отмененного бронирования
	ErrBookingInactive = errors.New("create_join_request: booking is not active")

	// ErrOwnBooking возвращается при попытке присоединиться к своему бронированию
	ErrOwnBooking = errors.New("create_join_request: cannot join own booking")

	// ErrSlotFull возвращается, когда в слоте нет свободных мест
	ErrSlotFull = errors.New("create_join_request: no spots left in the slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_join_request: internal error")
)
