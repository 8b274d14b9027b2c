package move_cash

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	adjustCash "github.com/m04kA/SMC-ParkingService/internal/usecase/adjust_cash"
)

const (
	msgInvalidBoxID       = "некорректный идентификатор кассы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBoxNotFound        = "касса не найдена"
	msgNotBoxOwner        = "двигать наличные может только владелец кассы"
	msgBoxNotOpen         = "касса не открыта"
	msgInvalidAmount      = "сумма должна быть больше нуля"
	msgFormNotFound       = "форма оплаты не найдена"
)

// MoveCashRequest HTTP request model
type MoveCashRequest struct {
	Amount        float64 `json:"amount"`
	PaymentFormID int64   `json:"paymentFormId"`
	Comment       *string `json:"comment,omitempty"`
}

// LineResponse HTTP response model
type LineResponse struct {
	LineID    int64     `json:"lineId"`
	BoxID     int64     `json:"boxId"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Handler обслуживает оба кассовых движения: пополнение и изъятие.
// Разница только в виде проводки, изъятие сохраняется со знаком минус.
type Handler struct {
	useCase AdjustCashUseCase
	logger  Logger
}

func NewHandler(useCase AdjustCashUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/registerboxes/{boxId}/cash-add
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, string(domain.LineSupplement))
}

// HandleRemove POST /api/v1/registerboxes/{boxId}/cash-remove
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, string(domain.LineWithdrawal))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, kind string) {
	identity, _ := auth.FromContext(r.Context())

	boxID, err := strconv.ParseInt(mux.Vars(r)["boxId"], 10, 64)
	if err != nil || boxID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBoxID)
		return
	}

	var req MoveCashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registerboxes/%d cash move - Invalid request body: %v", boxID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &adjustCash.Request{
		BoxID:         boxID,
		UserID:        identity.UserID,
		Amount:        req.Amount,
		Kind:          kind,
		PaymentFormID: req.PaymentFormID,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, adjustCash.ErrBoxNotFound):
			handlers.RespondNotFound(w, msgBoxNotFound)
		case errors.Is(err, adjustCash.ErrNotBoxOwner):
			handlers.RespondForbidden(w, msgNotBoxOwner)
		case errors.Is(err, adjustCash.ErrBoxNotOpen):
			handlers.RespondUnprocessable(w, msgBoxNotOpen)
		case errors.Is(err, adjustCash.ErrInvalidAmount):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, adjustCash.ErrPaymentFormNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("POST /registerboxes/%d cash move - Failed: kind=%s, error=%v", boxID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registerboxes/%d cash move - Line created: line_id=%d, kind=%s, amount=%.2f", boxID, result.LineID, result.Kind, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, &LineResponse{
		LineID:    result.LineID,
		BoxID:     result.BoxID,
		Kind:      result.Kind,
		Amount:    result.Amount,
		CreatedAt: result.CreatedAt,
	})
}
