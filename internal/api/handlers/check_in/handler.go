package check_in

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	checkIn "github.com/m04kA/SMC-ParkingService/internal/usecase/check_in"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgSlotNotFound       = "место не найдено"
	msgSlotRequired       = "для заезда нужно указать место"
	msgInvalidTransition  = "заезд невозможен из текущего состояния бронирования"
	msgSlotOccupied       = "место %s занято машиной %s"
)

// CheckInRequest HTTP request model
type CheckInRequest struct {
	SlotID int64 `json:"slotId"`
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	BookingID         int64     `json:"bookingId"`
	SlotID            int64     `json:"slotId"`
	SlotCode          string    `json:"slotCode"`
	QueueID           *int64    `json:"queueId,omitempty"`
	State             string    `json:"state"`
	CheckinAt         time.Time `json:"checkinAt"`
	PhotoAttachmentID *int64    `json:"photoAttachmentId,omitempty"`
}

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/check-in - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkIn.Request{
		BookingID: bookingID,
		SlotID:    req.SlotID,
		UserID:    identity.UserID,
	})
	if err != nil {
		var occupied *checkIn.SlotOccupiedError
		switch {
		case errors.As(err, &occupied):
			handlers.RespondConflict(w, fmt.Sprintf(msgSlotOccupied, occupied.SlotCode, occupied.OccupyingPlate))
		case errors.Is(err, checkIn.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, checkIn.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, checkIn.ErrSlotRequired):
			handlers.RespondUnprocessable(w, msgSlotRequired)
		case errors.Is(err, checkIn.ErrInvalidTransition):
			handlers.RespondUnprocessable(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /bookings/%d/check-in - Failed: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/check-in - Checked in to slot %s by user_id=%d", bookingID, result.SlotCode, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, &CheckInResponse{
		BookingID:         result.BookingID,
		SlotID:            result.SlotID,
		SlotCode:          result.SlotCode,
		QueueID:           result.QueueID,
		State:             result.State,
		CheckinAt:         result.CheckinAt,
		PhotoAttachmentID: result.PhotoAttachmentID,
	})
}
