package provision_queue

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// QueueRepository интерфейс репозитория очередей
type QueueRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Queue, error)
	Activate(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория мест
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	CountByQueue(ctx context.Context, queueID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
