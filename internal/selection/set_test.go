package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

func entry(teeID int64, date string, slotTime types.TimeString, participants int) Entry {
	d, _ := time.Parse(domain.DateFormat, date)
	return Entry{
		CourseID:       1,
		TeeID:          teeID,
		SlotDate:       d,
		BookingTime:    slotTime,
		Participants:   participants,
		OriginalStatus: domain.SlotAvailable,
	}
}

func TestSetUpsertReplacesSameKey(t *testing.T) {
	set := NewSet()

	set.Upsert(entry(1, "2026-09-03", "09:04", 2))
	set.Upsert(entry(1, "2026-09-03", "09:12", 1))
	require.Equal(t, 2, set.Len())

	// Повторный выбор того же слота обновляет запись, а не дублирует
	set.Upsert(entry(1, "2026-09-03", "09:04", 4))
	require.Equal(t, 2, set.Len())

	got, ok := set.Get(Key{SlotDate: "2026-09-03", TeeID: 1, BookingTime: "09:04"})
	require.True(t, ok)
	assert.Equal(t, 4, got.Participants)
	assert.Equal(t, 5, set.TotalParticipants())
}

func TestSetRemove(t *testing.T) {
	set := NewSet()
	set.Upsert(entry(1, "2026-09-03", "09:04", 2))

	key := Key{SlotDate: "2026-09-03", TeeID: 1, BookingTime: "09:04"}
	assert.True(t, set.IsSelected(key))
	assert.True(t, set.Remove(key))
	assert.False(t, set.IsSelected(key))
	assert.Equal(t, 0, set.Len())

	// Повторное удаление сообщает, что записи не было
	assert.False(t, set.Remove(key))
}

func TestSetRestoreForContext(t *testing.T) {
	set := NewSet()
	set.Upsert(entry(1, "2026-09-03", "09:04", 2))
	set.Upsert(entry(1, "2026-09-03", "10:00", 1))
	set.Upsert(entry(2, "2026-09-03", "09:04", 1)) // другая стартовая точка
	set.Upsert(entry(1, "2026-09-04", "09:04", 3)) // другая дата

	date, _ := time.Parse(domain.DateFormat, "2026-09-03")
	restored := set.RestoreForContext(1, 1, date)

	require.Len(t, restored, 2)
	for _, e := range restored {
		assert.Equal(t, int64(1), e.TeeID)
		assert.Equal(t, "2026-09-03", e.SlotDate.Format(domain.DateFormat))
	}

	// Выборки вне контекста остаются в наборе
	assert.Equal(t, 4, set.Len())
}

func TestSetClear(t *testing.T) {
	set := NewSet()
	set.Upsert(entry(1, "2026-09-03", "09:04", 2))
	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, set.TotalParticipants())
}
