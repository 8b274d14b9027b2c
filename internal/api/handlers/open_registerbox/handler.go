package open_registerbox

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	openBox "github.com/m04kA/SMC-ParkingService/internal/usecase/open_registerbox"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNegativeOpening    = "начальная сумма не может быть отрицательной"
	msgOpenBoxExists      = "у оператора уже есть открытая касса"
)

// OpenBoxRequest HTTP request model
type OpenBoxRequest struct {
	OpeningAmount float64 `json:"openingAmount"`
	Comment       *string `json:"comment,omitempty"`
}

// BoxResponse HTTP response model
type BoxResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	OwnerUserID   int64     `json:"ownerUserId"`
	OpeningAmount float64   `json:"openingAmount"`
	State         string    `json:"state"`
	CompanyID     int64     `json:"companyId"`
	OpenedAt      time.Time `json:"openedAt"`
}

type Handler struct {
	useCase OpenBoxUseCase
	logger  Logger
}

func NewHandler(useCase OpenBoxUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registerboxes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req OpenBoxRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registerboxes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &openBox.Request{
		UserID:        identity.UserID,
		UserName:      identity.UserName,
		CompanyID:     identity.CompanyID,
		OpeningAmount: req.OpeningAmount,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, openBox.ErrNegativeOpeningAmount):
			handlers.RespondBadRequest(w, msgNegativeOpening)
		case errors.Is(err, openBox.ErrOpenBoxExists):
			handlers.RespondConflict(w, msgOpenBoxExists)
		default:
			h.logger.Error("POST /registerboxes - Failed to open box: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registerboxes - Box opened: box_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, &BoxResponse{
		ID:            result.ID,
		Name:          result.Name,
		OwnerUserID:   result.OwnerUserID,
		OpeningAmount: result.OpeningAmount,
		State:         result.State,
		CompanyID:     result.CompanyID,
		OpenedAt:      result.OpenedAt,
	})
}
