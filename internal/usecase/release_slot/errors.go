package release_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда место не найдено
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyFree возвращается, когда место и так свободно
	ErrSlotAlreadyFree = errors.New("slot is already free")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
