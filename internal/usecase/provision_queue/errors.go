package provision_queue

import "errors"

var (
	// ErrQueueNotFound возвращается, когда очередь не найдена
	ErrQueueNotFound = errors.New("queue not found")

	// ErrAlreadyProvisioned возвращается при повторном provisioning
	ErrAlreadyProvisioned = errors.New("queue is already provisioned")

	// ErrCapacityTooSmall возвращается, когда вместимость меньше двух мест
	ErrCapacityTooSmall = errors.New("contract capacity must be greater than one")

	// ErrInvalidInitialSlot возвращается, когда начальный номер места не задан
	ErrInvalidInitialSlot = errors.New("initial slot must be greater than zero")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
