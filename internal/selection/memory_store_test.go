package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Неизвестная сессия начинается с пустого набора
	set, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	set.Upsert(entry(1, "2026-09-03", "09:04", 2))
	require.NoError(t, store.Save(ctx, "session-1", set))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.True(t, loaded.IsSelected(Key{SlotDate: "2026-09-03", TeeID: 1, BookingTime: "09:04"}))

	// Сессии изолированы друг от друга
	other, err := store.Load(ctx, "session-2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	set := NewSet()
	set.Upsert(entry(1, "2026-09-03", "09:04", 2))
	require.NoError(t, store.Save(ctx, "session-1", set))

	require.NoError(t, store.Clear(ctx, "session-1"))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}
