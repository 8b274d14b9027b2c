package create_camera

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	createCamera "github.com/m04kA/SMC-ParkingService/internal/usecase/create_camera"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "не указано имя камеры"
	msgEmptyAddress       = "не указан IP-адрес камеры"
	msgInvalidRole        = "роль камеры должна быть checkin или checkout"
	msgCameraLimit        = "у двора уже максимальное число камер"
	msgRoleTaken          = "у двора уже есть камера с этой ролью"
)

// CreateCameraRequest HTTP request model
type CreateCameraRequest struct {
	Name      string  `json:"name"`
	Model     *string `json:"model,omitempty"`
	IPAddress string  `json:"ipAddress"`
	Port      string  `json:"port,omitempty"`
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	Location  *string `json:"location,omitempty"`
	Role      string  `json:"role"`
}

// CameraResponse HTTP response model
type CameraResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IPAddress string    `json:"ipAddress"`
	Port      string    `json:"port"`
	Role      string    `json:"role"`
	CompanyID int64     `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	useCase CreateCameraUseCase
	logger  Logger
}

func NewHandler(useCase CreateCameraUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cameras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req CreateCameraRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cameras - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createCamera.Request{
		Name:      req.Name,
		Model:     req.Model,
		IPAddress: req.IPAddress,
		Port:      req.Port,
		Username:  req.Username,
		Password:  req.Password,
		Location:  req.Location,
		Role:      req.Role,
		CompanyID: identity.CompanyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createCamera.ErrEmptyName):
			handlers.RespondBadRequest(w, msgEmptyName)
		case errors.Is(err, createCamera.ErrEmptyAddress):
			handlers.RespondBadRequest(w, msgEmptyAddress)
		case errors.Is(err, createCamera.ErrInvalidRole):
			handlers.RespondBadRequest(w, msgInvalidRole)
		case errors.Is(err, createCamera.ErrCameraLimitReached):
			handlers.RespondConflict(w, msgCameraLimit)
		case errors.Is(err, createCamera.ErrRoleTaken):
			handlers.RespondConflict(w, msgRoleTaken)
		default:
			h.logger.Error("POST /cameras - Failed to create camera: company_id=%d, error=%v", identity.CompanyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cameras - Camera created: camera_id=%d, role=%s, company_id=%d", result.ID, result.Role, result.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, &CameraResponse{
		ID:        result.ID,
		Name:      result.Name,
		IPAddress: result.IPAddress,
		Port:      result.Port,
		Role:      result.Role,
		CompanyID: result.CompanyID,
		CreatedAt: result.CreatedAt,
	})
}
