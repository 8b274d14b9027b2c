package adjust_cash

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	paymentformRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentform"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// UseCase use case пополнения и изъятия наличных.
// Сумма на входе всегда положительная; изъятие сохраняется с минусом,
// так что значение закрытия кассы остаётся простой суммой проводок.
type UseCase struct {
	boxRepo   BoxRepository
	formRepo  PaymentFormRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	boxRepository BoxRepository,
	formRepo PaymentFormRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		boxRepo:   boxRepository,
		formRepo:  formRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case движения наличных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdjustCash: box=%d, user=%d, kind=%s, amount=%.2f",
		req.BoxID, req.UserID, req.Kind, req.Amount)

	kind := domain.LineKind(req.Kind)
	if kind != domain.LineSupplement && kind != domain.LineWithdrawal {
		uc.logger.Warn("AdjustCash: invalid kind=%s", req.Kind)
		return nil, ErrInvalidKind
	}
	if req.Amount <= 0 {
		uc.logger.Warn("AdjustCash: invalid amount=%.2f", req.Amount)
		return nil, ErrInvalidAmount
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		box, err := uc.boxRepo.GetBoxByIDForUpdate(txCtx, req.BoxID)
		if err != nil {
			if errors.Is(err, boxRepo.ErrBoxNotFound) {
				uc.logger.Warn("AdjustCash: box id=%d not found", req.BoxID)
				return ErrBoxNotFound
			}
			uc.logger.Error("AdjustCash: failed to get box id=%d: %v", req.BoxID, err)
			return fmt.Errorf("%w: failed to get box: %v", ErrInternal, err)
		}

		if box.OwnerUserID != req.UserID {
			uc.logger.Warn("AdjustCash: user=%d is not the owner of box id=%d", req.UserID, req.BoxID)
			return ErrNotBoxOwner
		}
		if !box.IsOpen() {
			uc.logger.Warn("AdjustCash: box id=%d is not open", req.BoxID)
			return ErrBoxNotOpen
		}

		if _, err := uc.formRepo.GetByID(txCtx, req.PaymentFormID); err != nil {
			if errors.Is(err, paymentformRepo.ErrPaymentFormNotFound) {
				uc.logger.Warn("AdjustCash: payment form id=%d not found", req.PaymentFormID)
				return ErrPaymentFormNotFound
			}
			uc.logger.Error("AdjustCash: failed to get payment form id=%d: %v", req.PaymentFormID, err)
			return fmt.Errorf("%w: failed to get payment form: %v", ErrInternal, err)
		}

		amount := req.Amount
		if kind == domain.LineWithdrawal {
			amount = -amount
		}

		line, err := uc.boxRepo.CreateLine(txCtx, &domain.RegisterLine{
			BoxID:         box.ID,
			PaymentFormID: req.PaymentFormID,
			Amount:        amount,
			Kind:          kind,
			Comment:       req.Comment,
			CompanyID:     box.CompanyID,
			CreatedBy:     req.UserID,
		})
		if err != nil {
			uc.logger.Error("AdjustCash: failed to create line in box id=%d: %v", req.BoxID, err)
			return fmt.Errorf("%w: failed to create line: %v", ErrInternal, err)
		}

		result = &Response{
			LineID:    line.ID,
			BoxID:     line.BoxID,
			Kind:      string(line.Kind),
			Amount:    line.Amount,
			CreatedAt: line.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdjustCash: line id=%d created in box id=%d, amount=%.2f",
		result.LineID, result.BoxID, result.Amount)
	return result, nil
}
