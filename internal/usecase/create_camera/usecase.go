package create_camera

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// defaultPort порт ISAPI по умолчанию
const defaultPort = "80"

// UseCase use case регистрации камеры двора.
// У двора не больше двух активных камер, по одной на въезд и выезд.
// Проверка лимита выполняется под блокировкой строк камер двора.
type UseCase struct {
	cameraRepo CameraRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cameraRepository CameraRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		cameraRepo: cameraRepository,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case регистрации камеры
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCamera: company=%d, role=%s, ip=%s", req.CompanyID, req.Role, req.IPAddress)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCamera: validation failed: %v", err)
		return nil, err
	}

	port := req.Port
	if port == "" {
		port = defaultPort
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cameras, err := uc.cameraRepo.ListByCompany(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("CreateCamera: failed to list cameras for company=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to list cameras: %v", ErrInternal, err)
		}

		if len(cameras) >= domain.MaxCamerasPerYard {
			uc.logger.Warn("CreateCamera: company=%d already has %d cameras", req.CompanyID, len(cameras))
			return ErrCameraLimitReached
		}
		for _, cam := range cameras {
			if cam.Role == domain.CameraRole(req.Role) {
				uc.logger.Warn("CreateCamera: company=%d already has a %s camera (id=%d)",
					req.CompanyID, req.Role, cam.ID)
				return ErrRoleTaken
			}
		}

		created, err := uc.cameraRepo.Create(txCtx, &domain.Camera{
			Name:      strings.TrimSpace(req.Name),
			Model:     req.Model,
			IPAddress: strings.TrimSpace(req.IPAddress),
			Port:      port,
			Username:  req.Username,
			Password:  req.Password,
			Location:  req.Location,
			Role:      domain.CameraRole(req.Role),
			CompanyID: req.CompanyID,
			Active:    true,
		})
		if err != nil {
			uc.logger.Error("CreateCamera: failed to create camera for company=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to create camera: %v", ErrInternal, err)
		}

		result = &Response{
			ID:        created.ID,
			Name:      created.Name,
			IPAddress: created.IPAddress,
			Port:      created.Port,
			Role:      string(created.Role),
			CompanyID: created.CompanyID,
			CreatedAt: created.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateCamera: camera id=%d registered for company=%d", result.ID, req.CompanyID)
	return result, nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(req.IPAddress) == "" {
		return ErrEmptyAddress
	}
	role := domain.CameraRole(req.Role)
	if role != domain.CameraCheckin && role != domain.CameraCheckout {
		return ErrInvalidRole
	}
	return nil
}
