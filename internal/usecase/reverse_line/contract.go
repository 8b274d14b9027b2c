package reverse_line

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BoxRepository интерфейс репозитория касс
type BoxRepository interface {
	GetBoxByIDForUpdate(ctx context.Context, id int64) (*domain.RegisterBox, error)
	GetLineByID(ctx context.Context, id int64) (*domain.RegisterLine, error)
	HasReversal(ctx context.Context, lineID int64) (bool, error)
	CreateLine(ctx context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error)
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
