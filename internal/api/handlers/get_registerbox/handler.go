package get_registerbox

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/service/registerbox"
)

const (
	msgInvalidBoxID = "некорректный идентификатор кассы"
	msgBoxNotFound  = "касса не найдена"
	msgAccessDenied = "нет доступа к чужой кассе"
)

type Handler struct {
	service RegisterBoxService
	logger  Logger
}

func NewHandler(service RegisterBoxService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/registerboxes/{boxId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	boxID, err := strconv.ParseInt(mux.Vars(r)["boxId"], 10, 64)
	if err != nil || boxID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBoxID)
		return
	}

	result, err := h.service.GetByID(r.Context(), identity, boxID)
	if err != nil {
		switch {
		case errors.Is(err, registerbox.ErrBoxNotFound):
			handlers.RespondNotFound(w, msgBoxNotFound)
		case errors.Is(err, registerbox.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /registerboxes/%d - Failed to get box: error=%v", boxID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
