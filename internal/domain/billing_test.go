package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tp(t time.Time) *time.Time { return &t }

func TestBillableHours(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkin  *time.Time
		checkout *time.Time
		want     int
	}{
		{"nil checkin", nil, tp(base), 0},
		{"nil checkout", tp(base), nil, 0},
		{"checkout before checkin", tp(base), tp(base.Add(-time.Hour)), 0},
		{"exactly one hour", tp(base), tp(base.Add(time.Hour)), 1},
		{"one minute over rounds up", tp(base), tp(base.Add(61 * time.Minute)), 2},
		{"two hours ten minutes rounds to three", tp(base), tp(base.Add(2*time.Hour + 10*time.Minute)), 3},
		{"one minute stay", tp(base), tp(base.Add(time.Minute)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillableHours(tt.checkin, tt.checkout))
		})
	}
}

func TestTotalAmount(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	checkout := checkin.Add(2*time.Hour + 10*time.Minute)
	rate := &CostRule{HourlyRate: 20.0}

	assert.Equal(t, 60.0, TotalAmount(tp(checkin), tp(checkout), rate))
	assert.Equal(t, 0.0, TotalAmount(tp(checkin), tp(checkout), nil))
	assert.Equal(t, 0.0, TotalAmount(nil, tp(checkout), rate))
}

func TestPaidAmount(t *testing.T) {
	lines := []*RegisterLine{
		{Kind: LinePayment, Amount: 50.0},
		{Kind: LinePayment, Amount: 30.0},
		{Kind: LineReversal, Amount: -30.0},
		{Kind: LineSupplement, Amount: 100.0},  // cash movements do not count as paid
		{Kind: LineWithdrawal, Amount: -200.0}, // neither do withdrawals
	}

	assert.Equal(t, 50.0, PaidAmount(lines))
	assert.Equal(t, 0.0, PaidAmount(nil))
}

func TestRemainingAmount(t *testing.T) {
	lines := []*RegisterLine{
		{Kind: LinePayment, Amount: 40.0},
	}
	assert.Equal(t, 20.0, RemainingAmount(60.0, lines))

	// reversal restores the balance
	lines = append(lines, &RegisterLine{Kind: LineReversal, Amount: -40.0})
	assert.Equal(t, 60.0, RemainingAmount(60.0, lines))
}

func TestPaymentStatusFor(t *testing.T) {
	checkout := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		total     float64
		remaining float64
		checkout  *time.Time
		want      PaymentStatus
	}{
		{"no checkout yet", 60, 60, nil, PaymentPending},
		{"zero total", 0, 0, tp(checkout), PaymentPending},
		{"nothing paid", 60, 60, tp(checkout), PaymentPending},
		{"partially paid", 60, 20, tp(checkout), PaymentPartial},
		{"fully paid", 60, 0, tp(checkout), PaymentPaid},
		{"overpaid", 60, -10, tp(checkout), PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatusFor(tt.total, tt.remaining, tt.checkout))
		})
	}
}
