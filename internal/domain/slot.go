package domain

import "time"

// SlotState represents the occupancy state of a parking slot
type SlotState string

const (
	SlotFree     SlotState = "free"
	SlotOccupied SlotState = "occupied"
)

// Slot represents a single numbered parking space belonging to a queue.
// A slot is occupied iff BookingID is set; the schema carries the matching
// CHECK constraint.
type Slot struct {
	ID        int64
	Code      string // zero-padded slot number, e.g. "07"
	QueueID   int64
	CompanyID int64
	State     SlotState
	BookingID *int64 // booking currently occupying the slot
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the slot can accept a check-in
func (s *Slot) IsFree() bool {
	return s.State == SlotFree
}

// IsOccupiedBy returns true if the slot is held by the given booking
func (s *Slot) IsOccupiedBy(bookingID int64) bool {
	return s.State == SlotOccupied && s.BookingID != nil && *s.BookingID == bookingID
}
