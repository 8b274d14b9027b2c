package open_registerbox

import (
	"context"

	openBox "github.com/m04kA/SMC-ParkingService/internal/usecase/open_registerbox"
)

type OpenBoxUseCase interface {
	Execute(ctx context.Context, req *openBox.Request) (*openBox.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
