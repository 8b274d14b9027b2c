package adjust_cash

import "errors"

var (
	// ErrBoxNotFound возвращается, когда касса не найдена
	ErrBoxNotFound = errors.New("register box not found")

	// ErrBoxNotOpen возвращается при проводке в закрытую кассу
	ErrBoxNotOpen = errors.New("register box is not open")

	// ErrNotBoxOwner возвращается, когда кассой двигает не её владелец
	ErrNotBoxOwner = errors.New("only the box owner can move cash")

	// ErrInvalidAmount возвращается при нулевой или отрицательной сумме
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidKind возвращается при неизвестном виде движения
	ErrInvalidKind = errors.New("kind must be supplement or withdrawal")

	// ErrPaymentFormNotFound возвращается, когда форма оплаты не найдена
	ErrPaymentFormNotFound = errors.New("payment form not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
