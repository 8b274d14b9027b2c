package check_out

import "time"

// Request запрос на check-out
type Request struct {
	BookingID int64
	UserID    int64
}

// Response результат check-out с расчётом оплаты
type Response struct {
	BookingID  int64
	State      string
	CheckoutAt time.Time

	// Расчёт по активному тарифу двора
	Hours         int
	HourlyRate    float64
	TotalAmount   float64
	PaidAmount    float64
	Remaining     float64
	PaymentStatus string

	// PhotoAttachmentID снимок камеры выезда, nil если камера не настроена
	// или снимок не удался
	PhotoAttachmentID *int64
}
