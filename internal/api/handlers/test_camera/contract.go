package test_camera

import (
	"context"

	testCamera "github.com/m04kA/SMC-ParkingService/internal/usecase/test_camera"
)

type TestCameraUseCase interface {
	Execute(ctx context.Context, req *testCamera.Request) (*testCamera.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
