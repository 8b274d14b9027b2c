package list_registerboxes

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/service/registerbox/models"
)

type RegisterBoxService interface {
	List(ctx context.Context, identity *auth.Identity, req *models.ListBoxesRequest) (*models.BoxListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
