package registerbox

import "errors"

var (
	// ErrBoxNotFound возвращается, когда касса не найдена
	ErrBoxNotFound = errors.New("register box not found")

	// ErrAccessDenied возвращается, когда оператор запрашивает чужую кассу
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
