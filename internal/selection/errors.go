package selection

import "errors"

var (
	// ErrStoreUnavailable возвращается при недоступности хранилища выборок
	ErrStoreUnavailable = errors.New("selection.store: store unavailable")

	// ErrEncodeSet возвращается при ошибке сериализации набора выборок
	ErrEncodeSet = errors.New("selection.store: failed to encode selection set")

	// ErrDecodeSet возвращается при ошибке десериализации набора выборок
	ErrDecodeSet = errors.New("selection.store: failed to decode selection set")
)
