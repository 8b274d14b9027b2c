package reverse_line

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	reverseLine "github.com/m04kA/SMC-ParkingService/internal/usecase/reverse_line"
)

const (
	msgInvalidBoxID       = "некорректный идентификатор кассы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBoxNotFound        = "касса не найдена"
	msgLineNotFound       = "проводка не найдена"
	msgNotBoxOwner        = "сторнировать может только владелец кассы"
	msgBoxNotOpen         = "касса не открыта"
	msgLineNotInBox       = "проводка принадлежит другой кассе"
	msgLineIsReversal     = "сторно нельзя сторнировать"
	msgAlreadyReversed    = "проводка уже сторнирована"
	msgInvalidReversal    = "сумма сторно должна быть противоположного знака и не больше исходной по модулю"
)

// ReverseRequest HTTP request model
type ReverseRequest struct {
	LineID  int64   `json:"lineId"`
	Amount  float64 `json:"amount"`
	Comment *string `json:"comment,omitempty"`
}

// ReverseResponse HTTP response model
type ReverseResponse struct {
	LineID         int64     `json:"lineId"`
	BoxID          int64     `json:"boxId"`
	ReversedLineID int64     `json:"reversedLineId"`
	Amount         float64   `json:"amount"`
	BookingID      *int64    `json:"bookingId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Handler struct {
	useCase ReverseLineUseCase
	logger  Logger
}

func NewHandler(useCase ReverseLineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registerboxes/{boxId}/reverse
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	boxID, err := strconv.ParseInt(mux.Vars(r)["boxId"], 10, 64)
	if err != nil || boxID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBoxID)
		return
	}

	var req ReverseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registerboxes/%d/reverse - Invalid request body: %v", boxID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reverseLine.Request{
		BoxID:   boxID,
		LineID:  req.LineID,
		UserID:  identity.UserID,
		Amount:  req.Amount,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reverseLine.ErrBoxNotFound):
			handlers.RespondNotFound(w, msgBoxNotFound)
		case errors.Is(err, reverseLine.ErrLineNotFound):
			handlers.RespondNotFound(w, msgLineNotFound)
		case errors.Is(err, reverseLine.ErrNotBoxOwner):
			handlers.RespondForbidden(w, msgNotBoxOwner)
		case errors.Is(err, reverseLine.ErrBoxNotOpen):
			handlers.RespondUnprocessable(w, msgBoxNotOpen)
		case errors.Is(err, reverseLine.ErrLineNotInBox):
			handlers.RespondBadRequest(w, msgLineNotInBox)
		case errors.Is(err, reverseLine.ErrLineIsReversal):
			handlers.RespondUnprocessable(w, msgLineIsReversal)
		case errors.Is(err, reverseLine.ErrAlreadyReversed):
			handlers.RespondConflict(w, msgAlreadyReversed)
		case errors.Is(err, reverseLine.ErrInvalidReversalAmount):
			handlers.RespondBadRequest(w, msgInvalidReversal)
		default:
			h.logger.Error("POST /registerboxes/%d/reverse - Failed: line_id=%d, error=%v", boxID, req.LineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registerboxes/%d/reverse - Line %d reversed by line %d", boxID, result.ReversedLineID, result.LineID)
	handlers.RespondJSON(w, http.StatusCreated, &ReverseResponse{
		LineID:         result.LineID,
		BoxID:          result.BoxID,
		ReversedLineID: result.ReversedLineID,
		Amount:         result.Amount,
		BookingID:      result.BookingID,
		CreatedAt:      result.CreatedAt,
	})
}
