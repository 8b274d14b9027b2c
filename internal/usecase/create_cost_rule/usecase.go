package create_cost_rule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
)

// UseCase use case создания тарифа двора.
// У двора может действовать только один тариф; второй активный тариф
// либо конфликт, либо, по явной просьбе, замена действующего.
type UseCase struct {
	costRuleRepo CostRuleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(costRuleRepository CostRuleRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		costRuleRepo: costRuleRepository,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания тарифа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCostRule: company=%d, rate=%.2f, replace=%v",
		req.CompanyID, req.HourlyRate, req.ReplaceActive)

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.HourlyRate <= 0 {
		uc.logger.Warn("CreateCostRule: invalid rate=%.2f", req.HourlyRate)
		return nil, ErrInvalidRate
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.costRuleRepo.GetActiveByCompany(txCtx, req.CompanyID)
		if err != nil && !errors.Is(err, costruleRepo.ErrRuleNotFound) {
			uc.logger.Error("CreateCostRule: failed to get active rule for company=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to get active rule: %v", ErrInternal, err)
		}

		if active != nil {
			if !req.ReplaceActive {
				uc.logger.Warn("CreateCostRule: company=%d already has active rule id=%d", req.CompanyID, active.ID)
				return ErrActiveRuleExists
			}
			if err := uc.costRuleRepo.Deactivate(txCtx, active.ID); err != nil {
				uc.logger.Error("CreateCostRule: failed to deactivate rule id=%d: %v", active.ID, err)
				return fmt.Errorf("%w: failed to deactivate rule: %v", ErrInternal, err)
			}
		}

		created, err := uc.costRuleRepo.Create(txCtx, &domain.CostRule{
			Name:       strings.TrimSpace(req.Name),
			CompanyID:  req.CompanyID,
			HourlyRate: req.HourlyRate,
			Active:     true,
		})
		if err != nil {
			if errors.Is(err, costruleRepo.ErrActiveRuleExists) {
				return ErrActiveRuleExists
			}
			uc.logger.Error("CreateCostRule: failed to create rule for company=%d: %v", req.CompanyID, err)
			return fmt.Errorf("%w: failed to create rule: %v", ErrInternal, err)
		}

		result = &Response{
			ID:         created.ID,
			Name:       created.Name,
			CompanyID:  created.CompanyID,
			HourlyRate: created.HourlyRate,
			Active:     created.Active,
			CreatedAt:  created.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateCostRule: rule id=%d created for company=%d", result.ID, req.CompanyID)
	return result, nil
}
