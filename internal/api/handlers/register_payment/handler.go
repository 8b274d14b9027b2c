package register_payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	registerPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/register_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgNotCheckedOut      = "оплата возможна только после выезда"
	msgNoOpenBox          = "у оператора нет открытой кассы"
	msgAlreadyPaid        = "бронирование уже полностью оплачено"
	msgInvalidAmount      = "сумма должна быть больше нуля"
	msgAmountExceeds      = "сумма превышает остаток к оплате"
	msgFormNotFound       = "форма оплаты не найдена"
)

// PaymentRequest HTTP request model
type PaymentRequest struct {
	BookingID     int64   `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentFormID int64   `json:"paymentFormId"`
	Comment       *string `json:"comment,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	LineID    int64   `json:"lineId"`
	BoxID     int64   `json:"boxId"`
	BookingID int64   `json:"bookingId"`
	Amount    float64 `json:"amount"`

	TotalAmount   float64 `json:"totalAmount"`
	Remaining     float64 `json:"remaining"`
	PaymentStatus string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	useCase RegisterPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RegisterPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req PaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &registerPayment.Request{
		BookingID:     req.BookingID,
		UserID:        identity.UserID,
		Amount:        req.Amount,
		PaymentFormID: req.PaymentFormID,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, registerPayment.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, registerPayment.ErrNotCheckedOut):
			handlers.RespondUnprocessable(w, msgNotCheckedOut)
		case errors.Is(err, registerPayment.ErrNoOpenBox):
			handlers.RespondUnprocessable(w, msgNoOpenBox)
		case errors.Is(err, registerPayment.ErrAlreadyPaid):
			handlers.RespondUnprocessable(w, msgAlreadyPaid)
		case errors.Is(err, registerPayment.ErrInvalidAmount):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, registerPayment.ErrAmountExceedsRemaining):
			handlers.RespondBadRequest(w, msgAmountExceeds)
		case errors.Is(err, registerPayment.ErrPaymentFormNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		default:
			h.logger.Error("POST /payments - Failed: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment registered: booking_id=%d, line_id=%d, amount=%.2f", result.BookingID, result.LineID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, &PaymentResponse{
		LineID:        result.LineID,
		BoxID:         result.BoxID,
		BookingID:     result.BookingID,
		Amount:        result.Amount,
		TotalAmount:   result.TotalAmount,
		Remaining:     result.Remaining,
		PaymentStatus: result.PaymentStatus,
		CreatedAt:     result.CreatedAt,
	})
}
