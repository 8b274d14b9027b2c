package test_camera

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
	cameraClient "github.com/m04kA/SMC-ParkingService/internal/integrations/camera"
)

// UseCase use case тестового снимка камеры. Снимок сохраняется вложением,
// камера запоминает его как последний удачный кадр.
type UseCase struct {
	cameraRepo     CameraRepository
	attachmentRepo AttachmentRepository
	cameraClient   CameraClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cameraRepository CameraRepository,
	attachmentRepo AttachmentRepository,
	client CameraClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		cameraRepo:     cameraRepository,
		attachmentRepo: attachmentRepo,
		cameraClient:   client,
		logger:         logger,
	}
}

// Execute выполняет use case тестового снимка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TestCamera: camera=%d", req.CameraID)

	cam, err := uc.cameraRepo.GetByID(ctx, req.CameraID)
	if err != nil {
		if errors.Is(err, cameraRepo.ErrCameraNotFound) {
			uc.logger.Warn("TestCamera: camera id=%d not found", req.CameraID)
			return nil, ErrCameraNotFound
		}
		uc.logger.Error("TestCamera: failed to get camera id=%d: %v", req.CameraID, err)
		return nil, fmt.Errorf("%w: failed to get camera: %v", ErrInternal, err)
	}

	image, err := uc.cameraClient.CaptureSnapshot(ctx, cam)
	if err != nil {
		if errors.Is(err, cameraClient.ErrCaptureFailed) || errors.Is(err, cameraClient.ErrNoAddress) {
			uc.logger.Warn("TestCamera: capture failed for camera id=%d: %v", req.CameraID, err)
			return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
		}
		uc.logger.Error("TestCamera: client error for camera id=%d: %v", req.CameraID, err)
		return nil, fmt.Errorf("%w: capture: %v", ErrInternal, err)
	}

	attachment, err := uc.attachmentRepo.Create(ctx, &domain.Attachment{
		Key:      uuid.NewString(),
		Name:     fmt.Sprintf("camera_test_%d.jpg", cam.ID),
		MimeType: "image/jpeg",
		Content:  image,
	})
	if err != nil {
		uc.logger.Error("TestCamera: failed to store snapshot for camera id=%d: %v", cam.ID, err)
		return nil, fmt.Errorf("%w: failed to store snapshot: %v", ErrInternal, err)
	}

	if err := uc.cameraRepo.SetLastAttachment(ctx, cam.ID, attachment.ID); err != nil {
		uc.logger.Error("TestCamera: failed to link snapshot to camera id=%d: %v", cam.ID, err)
		return nil, fmt.Errorf("%w: failed to link snapshot: %v", ErrInternal, err)
	}

	uc.logger.Info("TestCamera: camera id=%d captured %d bytes, attachment id=%d",
		cam.ID, len(image), attachment.ID)
	return &Response{
		CameraID:     cam.ID,
		AttachmentID: attachment.ID,
		SizeBytes:    len(image),
		CapturedAt:   attachment.CreatedAt,
	}, nil
}
