package queues

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// QueueRepository интерфейс репозитория очередей
type QueueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Queue, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Queue, error)
}

// SlotRepository интерфейс репозитория мест
type SlotRepository interface {
	ListByQueue(ctx context.Context, queueID int64) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
