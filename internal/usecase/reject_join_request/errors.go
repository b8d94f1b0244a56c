package reject_join_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_join_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reject_join_request: join request not found")

	// ErrNotOwner возвращается, когда участник не владеет исходным бронированием
	ErrNotOwner = errors.New("reject_join_request: member does not own the original booking")

	// ErrRequestResolved возвращается, когда заявка уже рассмотрена
	ErrRequestResolved = errors.New("reject_join_request: request is already resolved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_join_request: internal error")
)
