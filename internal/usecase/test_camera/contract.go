package test_camera

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// CameraRepository интерфейс репозитория камер
type CameraRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camera, error)
	SetLastAttachment(ctx context.Context, cameraID, attachmentID int64) error
}

// AttachmentRepository интерфейс репозитория вложений
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) (*domain.Attachment, error)
}

// CameraClient интерфейс клиента снимков камер
type CameraClient interface {
	CaptureSnapshot(ctx context.Context, camera *domain.Camera) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
