package close_registerbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// UseCase use case закрытия кассы. Закрытие одностороннее: обратной
// операции нет, повторное закрытие отвечает конфликтом.
type UseCase struct {
	boxRepo      BoxRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(boxRepository BoxRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		boxRepo:      boxRepository,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case закрытия кассы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CloseRegisterBox: box=%d, user=%d", req.BoxID, req.UserID)

	now := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		box, err := uc.boxRepo.GetBoxByIDForUpdate(txCtx, req.BoxID)
		if err != nil {
			if errors.Is(err, boxRepo.ErrBoxNotFound) {
				uc.logger.Warn("CloseRegisterBox: box id=%d not found", req.BoxID)
				return ErrBoxNotFound
			}
			uc.logger.Error("CloseRegisterBox: failed to get box id=%d: %v", req.BoxID, err)
			return fmt.Errorf("%w: failed to get box: %v", ErrInternal, err)
		}

		if box.OwnerUserID != req.UserID && !req.CanCloseAny {
			uc.logger.Warn("CloseRegisterBox: user=%d cannot close box id=%d", req.UserID, req.BoxID)
			return ErrAccessDenied
		}
		if !box.IsOpen() {
			uc.logger.Warn("CloseRegisterBox: box id=%d is already closed", req.BoxID)
			return ErrBoxAlreadyClosed
		}

		lines, err := uc.boxRepo.ListLinesByBox(txCtx, box.ID)
		if err != nil {
			uc.logger.Error("CloseRegisterBox: failed to list lines for box id=%d: %v", box.ID, err)
			return fmt.Errorf("%w: failed to list lines: %v", ErrInternal, err)
		}

		if err := uc.boxRepo.CloseBox(txCtx, box.ID, req.UserID, req.Comment, now); err != nil {
			if errors.Is(err, boxRepo.ErrBoxNotOpen) {
				return ErrBoxAlreadyClosed
			}
			uc.logger.Error("CloseRegisterBox: failed to close box id=%d: %v", box.ID, err)
			return fmt.Errorf("%w: failed to close box: %v", ErrInternal, err)
		}

		result = &Response{
			BoxID:        box.ID,
			State:        string(domain.BoxClosed),
			ClosedBy:     req.UserID,
			ClosedAt:     now,
			ClosingValue: box.ClosingValue(lines),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CloseRegisterBox: box id=%d closed, closing value=%.2f", result.BoxID, result.ClosingValue)
	return result, nil
}
