package reverse_line

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// UseCase use case сторнирования проводки.
// Проводки неизменяемы, сторно создаёт новую запись с противоположным
// знаком. Сторнировать можно один раз, сторно сторнировать нельзя.
type UseCase struct {
	boxRepo   BoxRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(boxRepository BoxRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		boxRepo:   boxRepository,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case сторнирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReverseLine: box=%d, line=%d, user=%d, amount=%.2f",
		req.BoxID, req.LineID, req.UserID, req.Amount)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		box, err := uc.boxRepo.GetBoxByIDForUpdate(txCtx, req.BoxID)
		if err != nil {
			if errors.Is(err, boxRepo.ErrBoxNotFound) {
				uc.logger.Warn("ReverseLine: box id=%d not found", req.BoxID)
				return ErrBoxNotFound
			}
			uc.logger.Error("ReverseLine: failed to get box id=%d: %v", req.BoxID, err)
			return fmt.Errorf("%w: failed to get box: %v", ErrInternal, err)
		}

		if box.OwnerUserID != req.UserID {
			uc.logger.Warn("ReverseLine: user=%d is not the owner of box id=%d", req.UserID, req.BoxID)
			return ErrNotBoxOwner
		}
		if !box.IsOpen() {
			uc.logger.Warn("ReverseLine: box id=%d is not open", req.BoxID)
			return ErrBoxNotOpen
		}

		line, err := uc.boxRepo.GetLineByID(txCtx, req.LineID)
		if err != nil {
			if errors.Is(err, boxRepo.ErrLineNotFound) {
				uc.logger.Warn("ReverseLine: line id=%d not found", req.LineID)
				return ErrLineNotFound
			}
			uc.logger.Error("ReverseLine: failed to get line id=%d: %v", req.LineID, err)
			return fmt.Errorf("%w: failed to get line: %v", ErrInternal, err)
		}

		if line.BoxID != box.ID {
			uc.logger.Warn("ReverseLine: line id=%d belongs to box id=%d, not box id=%d",
				line.ID, line.BoxID, box.ID)
			return ErrLineNotInBox
		}
		if line.IsReversal() {
			uc.logger.Warn("ReverseLine: line id=%d is itself a reversal", line.ID)
			return ErrLineIsReversal
		}

		reversed, err := uc.boxRepo.HasReversal(txCtx, line.ID)
		if err != nil {
			uc.logger.Error("ReverseLine: failed to check reversal of line id=%d: %v", line.ID, err)
			return fmt.Errorf("%w: failed to check reversal: %v", ErrInternal, err)
		}
		if reversed {
			uc.logger.Warn("ReverseLine: line id=%d is already reversed", line.ID)
			return ErrAlreadyReversed
		}

		if !line.CanReverse(req.Amount) {
			uc.logger.Warn("ReverseLine: amount=%.2f is not a legal reversal of line id=%d (amount=%.2f)",
				req.Amount, line.ID, line.Amount)
			return ErrInvalidReversalAmount
		}

		created, err := uc.boxRepo.CreateLine(txCtx, &domain.RegisterLine{
			BoxID:          box.ID,
			PaymentFormID:  line.PaymentFormID,
			Amount:         req.Amount,
			Kind:           domain.LineReversal,
			BookingID:      line.BookingID,
			ReversedLineID: &line.ID,
			Comment:        req.Comment,
			CompanyID:      box.CompanyID,
			CreatedBy:      req.UserID,
		})
		if err != nil {
			uc.logger.Error("ReverseLine: failed to create reversal for line id=%d: %v", line.ID, err)
			return fmt.Errorf("%w: failed to create reversal: %v", ErrInternal, err)
		}

		result = &Response{
			LineID:         created.ID,
			BoxID:          created.BoxID,
			ReversedLineID: line.ID,
			Amount:         created.Amount,
			BookingID:      created.BookingID,
			CreatedAt:      created.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReverseLine: reversal id=%d created for line id=%d", result.LineID, result.ReversedLineID)
	return result, nil
}
