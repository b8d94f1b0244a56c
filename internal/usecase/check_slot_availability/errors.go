package check_slot_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot_availability: invalid input data")

	// ErrSlotInPast возвращается, когда запрошен прошедший слот
	ErrSlotInPast = errors.New("check_slot_availability: slot is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_slot_availability: internal error")
)
