package get_queue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	queuesService "github.com/m04kA/SMC-ParkingService/internal/service/queues"
)

const (
	msgInvalidQueueID = "некорректный идентификатор очереди"
	msgQueueNotFound  = "очередь не найдена"
)

type Handler struct {
	service QueuesService
	logger  Logger
}

func NewHandler(service QueuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/queues/{queueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	queueID, err := strconv.ParseInt(mux.Vars(r)["queueId"], 10, 64)
	if err != nil || queueID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidQueueID)
		return
	}

	result, err := h.service.GetByID(r.Context(), queueID)
	if err != nil {
		switch {
		case errors.Is(err, queuesService.ErrQueueNotFound):
			handlers.RespondNotFound(w, msgQueueNotFound)
		default:
			h.logger.Error("GET /queues/%d - Failed: error=%v", queueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
