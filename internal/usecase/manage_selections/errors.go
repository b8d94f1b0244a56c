package manage_selections

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("manage_selections: invalid input data")

	// ErrSlotUnavailable возвращается при попытке выбрать недоступный слот
	ErrSlotUnavailable = errors.New("manage_selections: slot is not available for selection")

	// ErrSelectionNotFound возвращается при удалении невыбранного слота
	ErrSelectionNotFound = errors.New("manage_selections: selection not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manage_selections: internal error")
)
