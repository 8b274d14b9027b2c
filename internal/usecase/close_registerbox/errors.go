package close_registerbox

import "errors"

var (
	// ErrBoxNotFound возвращается, когда касса не найдена
	ErrBoxNotFound = errors.New("register box not found")

	// ErrBoxAlreadyClosed возвращается при закрытии уже закрытой кассы.
	// Закрытая касса не открывается заново.
	ErrBoxAlreadyClosed = errors.New("register box is already closed")

	// ErrAccessDenied возвращается, когда кассу закрывает не владелец
	// и не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
