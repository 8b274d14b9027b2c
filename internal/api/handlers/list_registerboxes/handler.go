package list_registerboxes

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/service/registerbox/models"
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

// Handle GET /api/v1/registerboxes?state=open
// Оператор видит только свои кассы, администратор все кассы двора.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	req := &models.ListBoxesRequest{}
	if state := r.URL.Query().Get("state"); state != "" {
		req.State = &state
	}

	result, err := h.service.List(r.Context(), identity, req)
	if err != nil {
		h.logger.Error("GET /registerboxes - Failed to list boxes: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
