package submit_selections

import (
	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/internal/selection"
)

// classifyEntry выбирает действие для одной записи по снимку состояния
// слота на момент выбора. Свежесть снимка не гарантируется, финальную
// проверку делают сами use case внутри транзакций.
func classifyEntry(entry selection.Entry) Action {
	switch {
	case entry.IsOwnBooking && entry.CanAddParticipants:
		return ActionAddParticipants
	case entry.OriginalStatus == domain.SlotAvailable:
		return ActionConfirm
	case entry.OriginalStatus == domain.SlotPartiallyAvailable &&
		(entry.CanJoinRequest || entry.HasExistingRequest):
		return ActionJoinRequest
	default:
		return ActionUnavailable
	}
}

// partition раскладывает записи набора по действиям, сохраняя исходные
// индексы: итоги собираются в порядке выборок, а не в порядке завершения.
type classified struct {
	index  int
	entry  selection.Entry
	action Action
}

func partition(entries []selection.Entry) []classified {
	result := make([]classified, 0, len(entries))
	for i, entry := range entries {
		result = append(result, classified{
			index:  i,
			entry:  entry,
			action: classifyEntry(entry),
		})
	}
	return result
}
