package create_cost_rule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	createCostRule "github.com/m04kA/SMC-ParkingService/internal/usecase/create_cost_rule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "не указано имя тарифа"
	msgInvalidRate        = "почасовая ставка должна быть больше нуля"
	msgActiveRuleExists   = "у двора уже есть действующий тариф"
)

// CreateCostRuleRequest HTTP request model
type CreateCostRuleRequest struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`

	// ReplaceActive true деактивирует действующий тариф вместо конфликта
	ReplaceActive bool `json:"replaceActive,omitempty"`
}

// CostRuleResponse HTTP response model
type CostRuleResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CompanyID  int64     `json:"companyId"`
	HourlyRate float64   `json:"hourlyRate"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Handler struct {
	useCase CreateCostRuleUseCase
	logger  Logger
}

func NewHandler(useCase CreateCostRuleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cost-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())

	var req CreateCostRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cost-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createCostRule.Request{
		Name:          req.Name,
		CompanyID:     identity.CompanyID,
		HourlyRate:    req.HourlyRate,
		ReplaceActive: req.ReplaceActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, createCostRule.ErrEmptyName):
			handlers.RespondBadRequest(w, msgEmptyName)
		case errors.Is(err, createCostRule.ErrInvalidRate):
			handlers.RespondBadRequest(w, msgInvalidRate)
		case errors.Is(err, createCostRule.ErrActiveRuleExists):
			handlers.RespondConflict(w, msgActiveRuleExists)
		default:
			h.logger.Error("POST /cost-rules - Failed to create cost rule: company_id=%d, error=%v", identity.CompanyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cost-rules - Cost rule created: rule_id=%d, rate=%.2f, company_id=%d", result.ID, result.HourlyRate, result.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, &CostRuleResponse{
		ID:         result.ID,
		Name:       result.Name,
		CompanyID:  result.CompanyID,
		HourlyRate: result.HourlyRate,
		Active:     result.Active,
		CreatedAt:  result.CreatedAt,
	})
}
