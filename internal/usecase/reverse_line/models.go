package reverse_line

import "time"

// Request запрос на сторнирование проводки
type Request struct {
	BoxID  int64
	LineID int64
	UserID int64

	// Amount знак противоположен исходной проводке: сторно платежа
	// отрицательное, сторно изъятия положительное
	Amount  float64
	Comment *string
}

// Response созданное сторно
type Response struct {
	LineID         int64
	BoxID          int64
	ReversedLineID int64
	Amount         float64
	BookingID      *int64
	CreatedAt      time.Time
}
