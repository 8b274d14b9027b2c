package create_cost_rule

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// CostRuleRepository интерфейс репозитория тарифов
type CostRuleRepository interface {
	GetActiveByCompany(ctx context.Context, companyID int64) (*domain.CostRule, error)
	Create(ctx context.Context, rule *domain.CostRule) (*domain.CostRule, error)
	Deactivate(ctx context.Context, id int64) error
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
