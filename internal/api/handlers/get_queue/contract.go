package get_queue

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/queues/models"
)

type QueuesService interface {
	GetByID(ctx context.Context, id int64) (*models.QueueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
