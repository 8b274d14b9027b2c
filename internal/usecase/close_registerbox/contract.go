package close_registerbox

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BoxRepository интерфейс репозитория касс
type BoxRepository interface {
	GetBoxByIDForUpdate(ctx context.Context, id int64) (*domain.RegisterBox, error)
	ListLinesByBox(ctx context.Context, boxID int64) ([]*domain.RegisterLine, error)
	CloseBox(ctx context.Context, id int64, closedBy int64, comment *string, at time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
