package close_registerbox

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	closeBox "github.com/m04kA/SMC-ParkingService/internal/usecase/close_registerbox"
)

const (
	msgInvalidBoxID     = "некорректный идентификатор кассы"
	msgBoxNotFound      = "касса не найдена"
	msgBoxAlreadyClosed = "касса уже закрыта"
	msgAccessDenied     = "закрыть чужую кассу может только администратор"
)

// CloseBoxRequest HTTP request model
type CloseBoxRequest struct {
	Comment *string `json:"comment,omitempty"`
}

// CloseBoxResponse HTTP response model
type CloseBoxResponse struct {
	BoxID        int64     `json:"boxId"`
	State        string    `json:"state"`
	ClosedBy     int64     `json:"closedBy"`
	ClosedAt     time.Time `json:"closedAt"`
	ClosingValue float64   `json:"closingValue"`
}

type Handler struct {
	useCase CloseBoxUseCase
	logger  Logger
}

func NewHandler(useCase CloseBoxUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registerboxes/{boxId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	boxID, err := strconv.ParseInt(mux.Vars(r)["boxId"], 10, 64)
	if err != nil || boxID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBoxID)
		return
	}

	// Тело опционально, касса закрывается и без комментария
	var req CloseBoxRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /registerboxes/%d/close - Invalid request body: %v", boxID, err)
			handlers.RespondBadRequest(w, msgInvalidBoxID)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &closeBox.Request{
		BoxID:       boxID,
		UserID:      identity.UserID,
		CanCloseAny: identity.CanSeeAllBoxes(),
		Comment:     req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, closeBox.ErrBoxNotFound):
			handlers.RespondNotFound(w, msgBoxNotFound)
		case errors.Is(err, closeBox.ErrBoxAlreadyClosed):
			handlers.RespondConflict(w, msgBoxAlreadyClosed)
		case errors.Is(err, closeBox.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("POST /registerboxes/%d/close - Failed: error=%v", boxID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registerboxes/%d/close - Box closed by user_id=%d, closing_value=%.2f", boxID, identity.UserID, result.ClosingValue)
	handlers.RespondJSON(w, http.StatusOK, &CloseBoxResponse{
		BoxID:        result.BoxID,
		State:        result.State,
		ClosedBy:     result.ClosedBy,
		ClosedAt:     result.ClosedAt,
		ClosingValue: result.ClosingValue,
	})
}
