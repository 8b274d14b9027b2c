package close_registerbox

import "time"

// Request запрос на закрытие кассы
type Request struct {
	BoxID  int64
	UserID int64

	// CanCloseAny true для администратора и суперпользователя
	CanCloseAny bool
	Comment     *string
}

// Response закрытая касса
type Response struct {
	BoxID        int64
	State        string
	ClosedBy     int64
	ClosedAt     time.Time
	ClosingValue float64
}
