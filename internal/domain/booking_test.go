package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingState
		to   BookingState
		want bool
	}{
		{StateProvisional, StateScheduled, true},
		{StateProvisional, StateCheckin, true},
		{StateProvisional, StateCancelled, true},
		{StateProvisional, StateCheckout, false},
		{StateScheduled, StateCheckin, true},
		{StateScheduled, StateCancelled, true},
		{StateScheduled, StateCheckout, false},
		{StateCheckin, StateCheckout, true},
		{StateCheckin, StateCancelled, false},
		{StateCheckin, StateScheduled, false},
		{StateCheckout, StateCheckin, false},
		{StateCancelled, StateCheckin, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{State: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingGuards(t *testing.T) {
	checkedIn := &Booking{State: StateCheckin}
	scheduled := &Booking{State: StateScheduled}
	cancelled := &Booking{State: StateCancelled}
	done := &Booking{State: StateCheckout}

	assert.True(t, checkedIn.IsCheckedIn())
	assert.False(t, scheduled.IsCheckedIn())

	// cancel: forbidden inside the yard and forbidden twice
	assert.False(t, checkedIn.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.True(t, scheduled.CanBeCancelled())
	assert.True(t, done.CanBeCancelled())

	// archive/delete: forbidden inside the yard only
	assert.False(t, checkedIn.CanBeArchived())
	assert.False(t, checkedIn.CanBeDeleted())
	assert.True(t, done.CanBeArchived())
	assert.True(t, cancelled.CanBeDeleted())
}

func TestBookingPlates(t *testing.T) {
	trailer := "DEF5678"
	empty := ""
	b := &Booking{
		TractorPlate:  "ABC1234",
		TrailerPlate1: &trailer,
		TrailerPlate2: &empty,
	}

	plates := b.Plates()
	assert.Equal(t, map[string]string{
		"tractor_plate":   "ABC1234",
		"trailer_plate_1": "DEF5678",
	}, plates)
}
