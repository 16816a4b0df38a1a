package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_State(t *testing.T) {
	tests := []struct {
		name        string
		isAvailable bool
		isBooked    bool
		want        SlotState
	}{
		{name: "available", isAvailable: true, isBooked: false, want: SlotStateAvailable},
		{name: "booked", isAvailable: false, isBooked: true, want: SlotStateBooked},
		{name: "withdrawn", isAvailable: false, isBooked: false, want: SlotStateWithdrawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Slot{IsAvailable: tt.isAvailable, IsBooked: tt.isBooked}
			assert.Equal(t, tt.want, s.State())
		})
	}
}

func TestSlot_CanBeBooked(t *testing.T) {
	assert.True(t, (&Slot{IsAvailable: true}).CanBeBooked())
	assert.False(t, (&Slot{IsAvailable: false, IsBooked: true}).CanBeBooked())
	assert.False(t, (&Slot{IsAvailable: false, IsBooked: false}).CanBeBooked())
}

func TestSlot_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Slot{IsBooked: true}).CanBeCancelled())
	assert.False(t, (&Slot{IsAvailable: true}).CanBeCancelled())
}
