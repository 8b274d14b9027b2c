package provision_queue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	provisionQueue "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_queue"
)

const (
	msgInvalidQueueID     = "некорректный идентификатор очереди"
	msgQueueNotFound      = "очередь не найдена"
	msgAlreadyProvisioned = "очередь уже развернута"
	msgCapacityTooSmall   = "вместимость контракта должна быть больше одного места"
	msgInvalidInitialSlot = "начальный номер места должен быть больше нуля"
)

// ProvisionResponse HTTP response model
type ProvisionResponse struct {
	QueueID      int64    `json:"queueId"`
	State        string   `json:"state"`
	SlotsCreated int      `json:"slotsCreated"`
	SlotCodes    []string `json:"slotCodes"`
}

type Handler struct {
	useCase ProvisionQueueUseCase
	logger  Logger
}

func NewHandler(useCase ProvisionQueueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/queues/{queueId}/provision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	queueID, err := strconv.ParseInt(mux.Vars(r)["queueId"], 10, 64)
	if err != nil || queueID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidQueueID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &provisionQueue.Request{QueueID: queueID})
	if err != nil {
		switch {
		case errors.Is(err, provisionQueue.ErrQueueNotFound):
			handlers.RespondNotFound(w, msgQueueNotFound)
		case errors.Is(err, provisionQueue.ErrAlreadyProvisioned):
			handlers.RespondConflict(w, msgAlreadyProvisioned)
		case errors.Is(err, provisionQueue.ErrCapacityTooSmall):
			handlers.RespondUnprocessable(w, msgCapacityTooSmall)
		case errors.Is(err, provisionQueue.ErrInvalidInitialSlot):
			handlers.RespondUnprocessable(w, msgInvalidInitialSlot)
		default:
			h.logger.Error("POST /queues/%d/provision - Failed: error=%v", queueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /queues/%d/provision - %d slots created", queueID, result.SlotsCreated)
	handlers.RespondJSON(w, http.StatusOK, &ProvisionResponse{
		QueueID:      result.QueueID,
		State:        result.State,
		SlotsCreated: result.SlotsCreated,
		SlotCodes:    result.SlotCodes,
	})
}
