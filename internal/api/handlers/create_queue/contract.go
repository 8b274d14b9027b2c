package create_queue

import (
	"context"

	createQueue "github.com/m04kA/SMC-ParkingService/internal/usecase/create_queue"
)

type CreateQueueUseCase interface {
	Execute(ctx context.Context, req *createQueue.Request) (*createQueue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
