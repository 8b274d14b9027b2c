package create_queue

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	createQueue "github.com/m04kA/SMC-ParkingService/internal/usecase/create_queue"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "не указано имя очереди"
	msgInvalidCapacity    = "вместимость контракта не может быть отрицательной"
	msgInvalidInitialSlot = "начальный номер места не может быть отрицательным"
)

// CreateQueueRequest HTTP request model
type CreateQueueRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	ClientID         int64   `json:"clientId"`
	ContractCapacity int     `json:"contractCapacity"`
	InitialSlot      int     `json:"initialSlot"`
}

// QueueResponse HTTP response model
type QueueResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	ClientID         int64   `json:"clientId"`
	ContractCapacity int     `json:"contractCapacity"`
	InitialSlot      int     `json:"initialSlot"`
	CompanyID        int64   `json:"companyId"`
	State            string  `json:"state"`
	CreatedAt        string  `json:"createdAt"`
}

type Handler struct {
	useCase CreateQueueUseCase
	logger  Logger
}

func NewHandler(useCase CreateQueueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/queues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req CreateQueueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /queues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createQueue.Request{
		Name:             req.Name,
		Description:      req.Description,
		ClientID:         req.ClientID,
		ContractCapacity: req.ContractCapacity,
		InitialSlot:      req.InitialSlot,
		CompanyID:        identity.CompanyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createQueue.ErrEmptyName):
			handlers.RespondBadRequest(w, msgEmptyName)
		case errors.Is(err, createQueue.ErrInvalidCapacity):
			handlers.RespondBadRequest(w, msgInvalidCapacity)
		case errors.Is(err, createQueue.ErrInvalidInitialSlot):
			handlers.RespondBadRequest(w, msgInvalidInitialSlot)
		default:
			h.logger.Error("POST /queues - Failed to create queue: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /queues - Queue created: queue_id=%d, client_id=%d", result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, &QueueResponse{
		ID:               result.ID,
		Name:             result.Name,
		Description:      result.Description,
		ClientID:         result.ClientID,
		ContractCapacity: result.ContractCapacity,
		InitialSlot:      result.InitialSlot,
		CompanyID:        result.CompanyID,
		State:            result.State,
		CreatedAt:        result.CreatedAt.Format(time.RFC3339),
	})
}
