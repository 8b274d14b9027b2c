package domain

import (
	"math"
	"time"
)

// BillableHours returns the occupancy duration in whole hours, rounded up.
// Exactly on the hour stays at that hour; any fraction rounds to the next
// full hour. Returns 0 unless both timestamps are present and ordered.
func BillableHours(checkin, checkout *time.Time) int {
	if checkin == nil || checkout == nil {
		return 0
	}
	d := checkout.Sub(*checkin)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Minutes() / 60.0))
}

// TotalAmount derives the billed amount from the occupancy window and the
// yard's active hourly rate. A missing rate yields 0, not an error.
func TotalAmount(checkin, checkout *time.Time, rate *CostRule) float64 {
	if rate == nil {
		return 0
	}
	return float64(BillableHours(checkin, checkout)) * rate.HourlyRate
}

// PaidAmount sums the booking's payment lines net of the reversals
// issued against them.
func PaidAmount(lines []*RegisterLine) float64 {
	var payments, reversals float64
	for _, line := range lines {
		switch line.Kind {
		case LinePayment:
			payments += line.Amount
		case LineReversal:
			// Reversal amounts carry the opposite sign of the line they
			// reverse, so subtracting the (negative) amount reduces paid.
			reversals += -line.Amount
		}
	}
	return payments - reversals
}

// RemainingAmount derives the outstanding balance from the total and the
// booking's ledger lines. Pure function of its inputs; recomputing on an
// unchanged booking yields the same result.
func RemainingAmount(total float64, lines []*RegisterLine) float64 {
	return total - PaidAmount(lines)
}

// PaymentStatusFor derives the payment status.
// Pending if nothing is billed yet (no checkout or zero total), paid once
// the remaining balance reaches zero, partial in between.
func PaymentStatusFor(total float64, remaining float64, checkout *time.Time) PaymentStatus {
	if checkout == nil || total == 0 {
		return PaymentPending
	}
	if remaining <= 0 {
		return PaymentPaid
	}
	if remaining < total {
		return PaymentPartial
	}
	return PaymentPending
}
