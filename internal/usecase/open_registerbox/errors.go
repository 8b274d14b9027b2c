package open_registerbox

import "errors"

var (
	// ErrOpenBoxExists возвращается, когда у оператора уже есть открытая касса
	ErrOpenBoxExists = errors.New("operator already has an open register box")

	// ErrNegativeOpeningAmount возвращается при отрицательной сумме открытия
	ErrNegativeOpeningAmount = errors.New("opening amount must not be negative")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
