package config

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PaymentFormRepository интерфейс репозитория форм оплаты
type PaymentFormRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.PaymentForm, error)
}

// CameraRepository интерфейс репозитория камер
type CameraRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Camera, error)
}

// CostRuleRepository интерфейс репозитория тарифов
type CostRuleRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.CostRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
