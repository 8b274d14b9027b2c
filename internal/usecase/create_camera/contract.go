package create_camera

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// CameraRepository интерфейс репозитория камер
type CameraRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Camera, error)
	Create(ctx context.Context, camera *domain.Camera) (*domain.Camera, error)
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
