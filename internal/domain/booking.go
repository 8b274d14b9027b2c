package domain

import "time"

// BookingState represents the lifecycle state of a vehicle visit
type BookingState string

const (
	StateProvisional BookingState = "provisional"
	StateScheduled   BookingState = "scheduled"
	StateCheckin     BookingState = "checkin"
	StateCheckout    BookingState = "checkout"
	StateCancelled   BookingState = "cancelled"
)

// PaymentStatus is derived from the booking total and its ledger lines
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking represents one vehicle visit, from scheduling through check-out.
// Cargo, carrier and driver fields are denormalized from the scheduling
// integration and kept for history.
type Booking struct {
	ID   int64
	Name *string // scheduling code

	TractorPlate  string
	TrailerPlate1 *string
	TrailerPlate2 *string
	TrailerPlate3 *string

	ClientID  int64
	QueueID   *int64
	SlotID    *int64
	CompanyID int64

	StartDate  *time.Time // arrival estimate
	EndDate    *time.Time // departure estimate
	CheckinAt  *time.Time
	CheckoutAt *time.Time

	CheckinUserID  *int64
	CheckoutUserID *int64

	State  BookingState
	Active bool

	// Denormalized cargo data
	ContractID         *string
	ContractExternalID *string
	Operation          *string
	Product            *string
	CargoPackaging     *string
	BookingCargoWeight *float64
	PlantCode          *string
	ParkingLotCode     *string
	CargoClientName    *string
	CargoClientCNPJ    *string
	CarrierName        *string
	CarrierCNPJ        *string
	DriverName         *string
	DriverCPF          *string
	DriverMobile       *string
	Observation        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCheckedIn returns true if the vehicle is currently inside the yard
func (b *Booking) IsCheckedIn() bool {
	return b.State == StateCheckin
}

// CanBeCancelled returns true if the booking can still be cancelled.
// Cancellation is the only non-linear exit and is disallowed once the
// vehicle is inside the yard.
func (b *Booking) CanBeCancelled() bool {
	return b.State != StateCheckin && b.State != StateCancelled
}

// CanBeArchived returns true if the booking may be soft-deleted
func (b *Booking) CanBeArchived() bool {
	return b.State != StateCheckin
}

// CanBeDeleted returns true if the booking may be hard-deleted
func (b *Booking) CanBeDeleted() bool {
	return b.State != StateCheckin
}

// CanTransitionTo reports whether moving to the target state is legal
// from the current one.
func (b *Booking) CanTransitionTo(target BookingState) bool {
	switch b.State {
	case StateProvisional:
		return target == StateScheduled || target == StateCheckin || target == StateCancelled
	case StateScheduled:
		return target == StateCheckin || target == StateCancelled
	case StateCheckin:
		return target == StateCheckout
	case StateCheckout, StateCancelled:
		return false
	default:
		return false
	}
}

// Plates returns the non-empty plate fields keyed by field name,
// in validation order.
func (b *Booking) Plates() map[string]string {
	plates := map[string]string{}
	if b.TractorPlate != "" {
		plates["tractor_plate"] = b.TractorPlate
	}
	if b.TrailerPlate1 != nil && *b.TrailerPlate1 != "" {
		plates["trailer_plate_1"] = *b.TrailerPlate1
	}
	if b.TrailerPlate2 != nil && *b.TrailerPlate2 != "" {
		plates["trailer_plate_2"] = *b.TrailerPlate2
	}
	if b.TrailerPlate3 != nil && *b.TrailerPlate3 != "" {
		plates["trailer_plate_3"] = *b.TrailerPlate3
	}
	return plates
}
