package create_queue

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// QueueRepository интерфейс репозитория очередей
type QueueRepository interface {
	Create(ctx context.Context, queue *domain.Queue) (*domain.Queue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
