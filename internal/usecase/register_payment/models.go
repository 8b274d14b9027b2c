package register_payment

import "time"

// Request запрос на регистрацию оплаты
type Request struct {
	BookingID     int64
	UserID        int64
	Amount        float64
	PaymentFormID int64
	Comment       *string
}

// Response результат оплаты
type Response struct {
	LineID    int64
	BoxID     int64
	BookingID int64
	Amount    float64

	// Состояние счёта после проводки
	TotalAmount   float64
	Remaining     float64
	PaymentStatus string

	CreatedAt time.Time
}
