package selection

import "context"

// Store хранилище наборов выборок. Набор живет в рамках сессии:
// новая сессия начинается с пустого набора, старый истекает по TTL.
type Store interface {
	// Load загружает набор сессии. Для неизвестной сессии возвращается пустой набор.
	Load(ctx context.Context, sessionID string) (*Set, error)

	// Save сохраняет набор сессии, продлевая TTL
	Save(ctx context.Context, sessionID string, set *Set) error

	// Clear удаляет набор сессии
	Clear(ctx context.Context, sessionID string) error
}
