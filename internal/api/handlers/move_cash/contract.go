package move_cash

import (
	"context"

	adjustCash "github.com/m04kA/SMC-ParkingService/internal/usecase/adjust_cash"
)

type AdjustCashUseCase interface {
	Execute(ctx context.Context, req *adjustCash.Request) (*adjustCash.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
