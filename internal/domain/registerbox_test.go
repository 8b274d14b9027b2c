package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanReverse(t *testing.T) {
	payment := &RegisterLine{Kind: LinePayment, Amount: 100.0}
	withdrawal := &RegisterLine{Kind: LineWithdrawal, Amount: -50.0}

	tests := []struct {
		name   string
		line   *RegisterLine
		amount float64
		want   bool
	}{
		{"full opposite reversal", payment, -100.0, true},
		{"partial opposite reversal", payment, -40.0, true},
		{"zero amount", payment, 0, false},
		{"same sign", payment, 40.0, false},
		{"equal amount same sign", payment, 100.0, false},
		{"magnitude exceeds original", payment, -100.01, false},
		{"withdrawal reversed with positive", withdrawal, 50.0, true},
		{"withdrawal reversed with negative", withdrawal, -50.0, false},
		{"withdrawal over-reversed", withdrawal, 60.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.CanReverse(tt.amount))
		})
	}
}

func TestClosingValue(t *testing.T) {
	box := &RegisterBox{OpeningAmount: 100.0}

	lines := []*RegisterLine{
		{Kind: LinePayment, Amount: 60.0},
		{Kind: LineWithdrawal, Amount: -30.0},
		{Kind: LineSupplement, Amount: 20.0},
		{Kind: LineReversal, Amount: -60.0},
	}

	// plain sum: withdrawals and reversals already carry their sign
	assert.Equal(t, 90.0, box.ClosingValue(lines))
	assert.Equal(t, 100.0, box.ClosingValue(nil))
}

func TestDisplayName(t *testing.T) {
	payment := &RegisterLine{Kind: LinePayment, Amount: 60.0}
	assert.Equal(t, "Payment - Cash - 60.00", payment.DisplayName("Cash"))

	// negative amounts are parenthesized
	withdrawal := &RegisterLine{Kind: LineWithdrawal, Amount: -30.0}
	assert.Equal(t, "Withdrawal - Cash - (30.00)", withdrawal.DisplayName("Cash"))

	reversal := &RegisterLine{Kind: LineReversal, Amount: -60.0}
	assert.Equal(t, "Reversal - Card - (60.00)", reversal.DisplayName("Card"))
}

func TestValidLineKind(t *testing.T) {
	assert.True(t, ValidLineKind(LinePayment))
	assert.True(t, ValidLineKind(LineReversal))
	assert.False(t, ValidLineKind(LineKind("refund")))
}

func TestBoxIsOpen(t *testing.T) {
	assert.True(t, (&RegisterBox{State: BoxOpen}).IsOpen())
	assert.False(t, (&RegisterBox{State: BoxClosed}).IsOpen())
}

func TestLineIsReversal(t *testing.T) {
	assert.True(t, (&RegisterLine{Kind: LineReversal}).IsReversal())
	assert.False(t, (&RegisterLine{Kind: LinePayment}).IsReversal())
}
