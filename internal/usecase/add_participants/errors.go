package add_participants

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_participants: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("add_participants: booking not found")

	// ErrNotOwner возвращается, когда участник не владеет бронированием
	ErrNotOwner = errors.New("add_participants: member does not own this booking")

	// ErrBookingInactive возвращается для отмененного бронирования
	ErrBookingInactive = errors.New("add_participants: booking is not active")

	// ErrSlotFull возвращается, когда добавление превысило бы вместимость слота
	ErrSlotFull = errors.New("add_participants: not enough spots in the slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_participants: internal error")
)
