package queues

import "errors"

var (
	// ErrQueueNotFound возвращается, когда очередь не найдена
	ErrQueueNotFound = errors.New("queue not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
