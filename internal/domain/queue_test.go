package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanProvision(t *testing.T) {
	tests := []struct {
		name  string
		queue Queue
		want  bool
	}{
		{"eligible", Queue{State: QueueProvisional, ContractCapacity: 5, InitialSlot: 1}, true},
		{"already active", Queue{State: QueueActive, ContractCapacity: 5, InitialSlot: 1}, false},
		{"capacity of one", Queue{State: QueueProvisional, ContractCapacity: 1, InitialSlot: 1}, false},
		{"zero capacity", Queue{State: QueueProvisional, ContractCapacity: 0, InitialSlot: 1}, false},
		{"zero initial slot", Queue{State: QueueProvisional, ContractCapacity: 5, InitialSlot: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.queue.CanProvision())
		})
	}
}

func TestSlotOccupancy(t *testing.T) {
	bookingID := int64(7)

	free := &Slot{State: SlotFree}
	assert.True(t, free.IsFree())
	assert.False(t, free.IsOccupiedBy(bookingID))

	occupied := &Slot{State: SlotOccupied, BookingID: &bookingID}
	assert.False(t, occupied.IsFree())
	assert.True(t, occupied.IsOccupiedBy(7))
	assert.False(t, occupied.IsOccupiedBy(8))
}
