package memberservice

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник не найден во внешнем сервисе
	ErrMemberNotFound = errors.New("memberservice.client: member not found")

	// ErrRequestFailed возвращается при сетевой ошибке или ошибке сервиса
	ErrRequestFailed = errors.New("memberservice.client: request failed")

	// ErrDecodeResponse возвращается при ошибке разбора ответа сервиса
	ErrDecodeResponse = errors.New("memberservice.client: failed to decode response")
)
