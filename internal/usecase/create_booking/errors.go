package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotInPast возвращается, когда слот уже прошел
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrDateOutsideWindow возвращается, когда дата за пределами окна бронирования
	ErrDateOutsideWindow = errors.New("create_booking: date is outside the booking window")

	// ErrTimeOffGrid возвращается, когда время не лежит на слотовой сетке
	ErrTimeOffGrid = errors.New("create_booking: time is not on the slot grid")

	// ErrSlotFull возвращается, когда запрошенное число участников не помещается в слот
	ErrSlotFull = errors.New("create_booking: not enough spots in the slot")

	// ErrAlreadyBooked возвращается, когда у участника уже есть бронирование в этом слоте
	ErrAlreadyBooked = errors.New("create_booking: member already has a booking in this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
