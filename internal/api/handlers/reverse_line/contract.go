package reverse_line

import (
	"context"

	reverseLine "github.com/m04kA/SMC-ParkingService/internal/usecase/reverse_line"
)

type ReverseLineUseCase interface {
	Execute(ctx context.Context, req *reverseLine.Request) (*reverseLine.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
