package check_out

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotCheckedIn возвращается, когда машина не во дворе
	ErrNotCheckedIn = errors.New("booking is not checked in")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
