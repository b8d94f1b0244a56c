package approve_join_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_join_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("approve_join_request: join request not found")

	// ErrNotOwner возвращается, когда участник не владеет исходным бронированием
	ErrNotOwner = errors.New("approve_join_request: member does not own the original booking")

	// ErrRequestResolved возвращается, когда заявка уже рассмотрена
	ErrRequestResolved = errors.New("approve_join_request: request is already resolved")

	// ErrSlotFull возвращается, когда места в слоте кончились после отправки заявки
	ErrSlotFull = errors.New("approve_join_request: not enough spots left in the slot")

	// ErrBookingInactive возвращается, когда исходное бронирование отменено
	ErrBookingInactive = errors.New("approve_join_request: original booking is not active")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_join_request: internal error")
)
