package reverse_line

import "errors"

var (
	// ErrBoxNotFound возвращается, когда касса не найдена
	ErrBoxNotFound = errors.New("register box not found")

	// ErrLineNotFound возвращается, когда проводка не найдена
	ErrLineNotFound = errors.New("register line not found")

	// ErrBoxNotOpen возвращается при сторнировании в закрытой кассе
	ErrBoxNotOpen = errors.New("register box is not open")

	// ErrNotBoxOwner возвращается, когда сторнирует не владелец кассы
	ErrNotBoxOwner = errors.New("only the box owner can reverse lines")

	// ErrLineNotInBox возвращается, когда проводка принадлежит другой кассе
	ErrLineNotInBox = errors.New("line does not belong to this box")

	// ErrLineIsReversal возвращается при попытке сторнировать сторно
	ErrLineIsReversal = errors.New("a reversal line cannot be reversed")

	// ErrAlreadyReversed возвращается, когда проводка уже сторнирована
	ErrAlreadyReversed = errors.New("line is already reversed")

	// ErrInvalidReversalAmount возвращается, когда сумма сторно не
	// противоположна по знаку или превышает исходную по модулю
	ErrInvalidReversalAmount = errors.New("reversal amount must oppose the original sign and not exceed it in magnitude")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
