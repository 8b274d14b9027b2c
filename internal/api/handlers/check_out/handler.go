package check_out

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	checkOut "github.com/m04kA/SMC-ParkingService/internal/usecase/check_out"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgNotCheckedIn     = "машина не во дворе, выезд невозможен"
)

// CheckOutResponse HTTP response model
type CheckOutResponse struct {
	BookingID  int64     `json:"bookingId"`
	State      string    `json:"state"`
	CheckoutAt time.Time `json:"checkoutAt"`

	Hours         int     `json:"hours"`
	HourlyRate    float64 `json:"hourlyRate"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	Remaining     float64 `json:"remaining"`
	PaymentStatus string  `json:"paymentStatus"`

	PhotoAttachmentID *int64 `json:"photoAttachmentId,omitempty"`
}

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkOut.Request{
		BookingID: bookingID,
		UserID:    identity.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkOut.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, checkOut.ErrNotCheckedIn):
			handlers.RespondUnprocessable(w, msgNotCheckedIn)
		default:
			h.logger.Error("POST /bookings/%d/check-out - Failed: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/check-out - Checked out by user_id=%d, total=%.2f", bookingID, identity.UserID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, &CheckOutResponse{
		BookingID:         result.BookingID,
		State:             result.State,
		CheckoutAt:        result.CheckoutAt,
		Hours:             result.Hours,
		HourlyRate:        result.HourlyRate,
		TotalAmount:       result.TotalAmount,
		PaidAmount:        result.PaidAmount,
		Remaining:         result.Remaining,
		PaymentStatus:     result.PaymentStatus,
		PhotoAttachmentID: result.PhotoAttachmentID,
	})
}
