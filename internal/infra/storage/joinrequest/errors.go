package joinrequest

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка на присоединение не найдена
	ErrRequestNotFound = errors.New("joinrequest.repository: join request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("joinrequest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("joinrequest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("joinrequest.repository: failed to scan row")
)
