package list_cost_rules

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/config/models"
)

type ConfigService interface {
	ListCostRules(ctx context.Context, companyID int64) (*models.CostRuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
