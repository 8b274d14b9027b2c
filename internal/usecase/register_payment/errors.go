package register_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotCheckedOut возвращается при оплате до выезда
	ErrNotCheckedOut = errors.New("booking is not checked out yet")

	// ErrNoOpenBox возвращается, когда у оператора нет открытой кассы
	ErrNoOpenBox = errors.New("operator has no open register box")

	// ErrAlreadyPaid возвращается, когда по бронированию нечего платить
	ErrAlreadyPaid = errors.New("booking is already fully paid")

	// ErrInvalidAmount возвращается при нулевой или отрицательной сумме
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrAmountExceedsRemaining возвращается, когда сумма больше остатка
	ErrAmountExceedsRemaining = errors.New("amount exceeds the remaining balance")

	// ErrPaymentFormNotFound возвращается, когда форма оплаты не найдена
	ErrPaymentFormNotFound = errors.New("payment form not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
