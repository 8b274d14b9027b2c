package get_registerbox

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/service/registerbox/models"
)

type RegisterBoxService interface {
	GetByID(ctx context.Context, identity *auth.Identity, id int64) (*models.BoxResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
