package register_payment

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
}

// BoxRepository интерфейс репозитория касс
type BoxRepository interface {
	FindOpenByOwner(ctx context.Context, ownerUserID int64) (*domain.RegisterBox, error)
	ListLinesByBooking(ctx context.Context, bookingID int64) ([]*domain.RegisterLine, error)
	CreateLine(ctx context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error)
}

// CostRuleRepository интерфейс репозитория тарифов
type CostRuleRepository interface {
	GetActiveByCompany(ctx context.Context, companyID int64) (*domain.CostRule, error)
}

// PaymentFormRepository интерфейс репозитория форм оплаты
type PaymentFormRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PaymentForm, error)
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
