package provision_queue

import (
	"context"

	provisionQueue "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_queue"
)

type ProvisionQueueUseCase interface {
	Execute(ctx context.Context, req *provisionQueue.Request) (*provisionQueue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
