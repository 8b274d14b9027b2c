package create_queue

import "errors"

var (
	// ErrEmptyName возвращается, когда не указано имя очереди
	ErrEmptyName = errors.New("queue name is required")

	// ErrInvalidCapacity возвращается при отрицательной вместимости
	ErrInvalidCapacity = errors.New("contract capacity must not be negative")

	// ErrInvalidInitialSlot возвращается при отрицательном начальном номере места
	ErrInvalidInitialSlot = errors.New("initial slot must not be negative")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
