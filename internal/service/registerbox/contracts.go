package registerbox

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// BoxRepository интерфейс репозитория касс
type BoxRepository interface {
	GetBoxByID(ctx context.Context, id int64) (*domain.RegisterBox, error)
	ListBoxes(ctx context.Context, filter boxRepo.BoxFilter) ([]*domain.RegisterBox, error)
	ListLinesByBox(ctx context.Context, boxID int64) ([]*domain.RegisterLine, error)
}

// PaymentFormRepository интерфейс репозитория форм оплаты
type PaymentFormRepository interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
