package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStatus(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		capacity     int
		expected     SlotStatus
	}{
		{"empty slot", 0, 4, SlotAvailable},
		{"negative participants treated as empty", -1, 4, SlotAvailable},
		{"one of four", 1, 4, SlotPartiallyAvailable},
		{"three of four", 3, 4, SlotPartiallyAvailable},
		{"full slot", 4, 4, SlotBooked},
		{"over capacity still booked", 5, 4, SlotBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &Slot{Capacity: tt.capacity, CurrentParticipants: tt.participants}
			assert.Equal(t, tt.expected, slot.Status())
		})
	}
}

func TestSlotAvailableSpots(t *testing.T) {
	slot := &Slot{Capacity: 4, CurrentParticipants: 3}
	assert.Equal(t, 1, slot.AvailableSpots())

	slot.CurrentParticipants = 4
	assert.Equal(t, 0, slot.AvailableSpots())

	// never negative
	slot.CurrentParticipants = 6
	assert.Equal(t, 0, slot.AvailableSpots())
}

func TestSlotCanFit(t *testing.T) {
	slot := &Slot{Capacity: 4, CurrentParticipants: 2}

	assert.True(t, slot.CanFit(1))
	assert.True(t, slot.CanFit(2))
	assert.False(t, slot.CanFit(3))
	assert.False(t, slot.CanFit(0))
	assert.False(t, slot.CanFit(-1))
}
