package create_camera

import (
	"context"

	createCamera "github.com/m04kA/SMC-ParkingService/internal/usecase/create_camera"
)

type CreateCameraUseCase interface {
	Execute(ctx context.Context, req *createCamera.Request) (*createCamera.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
