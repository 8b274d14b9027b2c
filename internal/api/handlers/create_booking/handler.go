package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgTractorPlateRequired = "не указан номер тягача"
	msgInvalidPlate         = "номер не соответствует ни старому, ни Mercosul формату"
	msgInvalidState         = "начальное состояние должно быть provisional или scheduled"
	msgInvalidDateRange     = "ожидаемый выезд раньше ожидаемого въезда"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.CompanyID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTractorPlateRequired):
			handlers.RespondBadRequest(w, msgTractorPlateRequired)
		case errors.Is(err, createBooking.ErrInvalidPlate):
			handlers.RespondBadRequest(w, msgInvalidPlate)
		case errors.Is(err, createBooking.ErrInvalidState):
			handlers.RespondBadRequest(w, msgInvalidState)
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client_id=%d", result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
