package close_registerbox

import (
	"context"

	closeBox "github.com/m04kA/SMC-ParkingService/internal/usecase/close_registerbox"
)

type CloseBoxUseCase interface {
	Execute(ctx context.Context, req *closeBox.Request) (*closeBox.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
