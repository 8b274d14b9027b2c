package release_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	releaseSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/release_slot"
)

const (
	msgInvalidSlotID   = "некорректный идентификатор места"
	msgSlotNotFound    = "место не найдено"
	msgSlotAlreadyFree = "место уже свободно"
)

// ReleaseResponse HTTP response model
type ReleaseResponse struct {
	SlotID            int64  `json:"slotId"`
	Code              string `json:"code"`
	State             string `json:"state"`
	ReleasedBookingID *int64 `json:"releasedBookingId,omitempty"`
}

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseSlot.Request{
		SlotID: slotID,
		UserID: identity.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, releaseSlot.ErrSlotAlreadyFree):
			handlers.RespondUnprocessable(w, msgSlotAlreadyFree)
		default:
			h.logger.Error("POST /slots/%d/release - Failed: error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%d/release - Slot released by user_id=%d", slotID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, &ReleaseResponse{
		SlotID:            result.SlotID,
		Code:              result.Code,
		State:             result.State,
		ReleasedBookingID: result.ReleasedBookingID,
	})
}
