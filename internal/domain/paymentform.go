package domain

import "time"

// PaymentForm is a payment method accepted at the yard (cash, card, pix, ...)
type PaymentForm struct {
	ID        int64
	Name      string
	CompanyID int64
	Active    bool
	CreatedAt time.Time
}
