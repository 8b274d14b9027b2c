package domain

import (
	"fmt"
	"time"
)

// BoxState represents the lifecycle state of a register box
type BoxState string

const (
	BoxOpen   BoxState = "open"
	BoxClosed BoxState = "closed"
)

// LineKind is the operation kind of a register line
type LineKind string

const (
	LinePayment    LineKind = "payment"
	LineSupplement LineKind = "supplement" // cash added into the drawer
	LineWithdrawal LineKind = "withdrawal" // cash taken out, stored negated
	LineReversal   LineKind = "reversal"   // signed cancellation of a prior line
)

// lineKindLabels human-readable labels for display names
var lineKindLabels = map[LineKind]string{
	LinePayment:    "Payment",
	LineSupplement: "Supplement",
	LineWithdrawal: "Withdrawal",
	LineReversal:   "Reversal",
}

// ValidLineKind reports whether the kind is one of the known operation kinds
func ValidLineKind(kind LineKind) bool {
	_, ok := lineKindLabels[kind]
	return ok
}

// RegisterBox is a single operator's cash drawer session, bounded by
// open/close. A closed box never reopens.
type RegisterBox struct {
	ID            int64
	Name          string // "<operator name> <dd/mm/yyyy hh:mm:ss>", assigned at open
	OwnerUserID   int64
	OpeningAmount float64
	State         BoxState
	Comment       *string
	ClosedBy      *int64
	CompanyID     int64
	OpenedAt      time.Time
	ClosedAt      *time.Time
}

// IsOpen returns true if lines may still be appended
func (b *RegisterBox) IsOpen() bool {
	return b.State == BoxOpen
}

// ClosingValue derives the box closing value: opening amount plus the sum
// of all line amounts.
func (b *RegisterBox) ClosingValue(lines []*RegisterLine) float64 {
	total := b.OpeningAmount
	for _, line := range lines {
		total += line.Amount
	}
	return total
}

// RegisterLine is one signed ledger entry within a register box.
// Lines are immutable once created; only reversal lines neutralize them.
type RegisterLine struct {
	ID             int64
	BoxID          int64
	PaymentFormID  int64
	Amount         float64
	Kind           LineKind
	BookingID      *int64 // set for payment/reversal lines tied to a booking
	ReversedLineID *int64 // for reversals, the line being reversed
	Comment        *string
	CompanyID      int64
	CreatedBy      int64
	CreatedAt      time.Time
}

// IsReversal returns true for reversal-kind lines
func (l *RegisterLine) IsReversal() bool {
	return l.Kind == LineReversal
}

// CanReverse reports whether amount is a legal reversal of this line:
// magnitude must not exceed the original and the sign must oppose it.
// An amount equal to the original is rejected even though it satisfies the
// magnitude bound, because it implies a non-opposing sign.
func (l *RegisterLine) CanReverse(amount float64) bool {
	if amount == 0 {
		return false
	}
	if abs(amount) > abs(l.Amount) {
		return false
	}
	// Opposite signs multiply negative
	return amount*l.Amount < 0
}

// DisplayName composes the human-readable line summary:
// "<kind> - <payment form> - <amount>", negative amounts parenthesized.
func (l *RegisterLine) DisplayName(paymentFormName string) string {
	amount := fmt.Sprintf("%.2f", l.Amount)
	if l.Amount < 0 {
		amount = fmt.Sprintf("(%.2f)", -l.Amount)
	}
	return fmt.Sprintf("%s - %s - %s", lineKindLabels[l.Kind], paymentFormName, amount)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
