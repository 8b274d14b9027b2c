package list_cameras

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/config/models"
)

type ConfigService interface {
	ListCameras(ctx context.Context, companyID int64) (*models.CameraListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
