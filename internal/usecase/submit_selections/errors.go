package submit_selections

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_selections: invalid input data")

	// ErrNoSelections возвращается при отправке пустого набора выборок
	ErrNoSelections = errors.New("submit_selections: no slots selected")

	// ErrAllFailed возвращается, когда ни одна выборка не прошла
	ErrAllFailed = errors.New("submit_selections: all selections failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_selections: internal error")
)
