package create_cost_rule

import (
	"context"

	createCostRule "github.com/m04kA/SMC-ParkingService/internal/usecase/create_cost_rule"
)

type CreateCostRuleUseCase interface {
	Execute(ctx context.Context, req *createCostRule.Request) (*createCostRule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
