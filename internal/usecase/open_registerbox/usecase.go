package open_registerbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// UseCase use case открытия кассы.
// У оператора может быть не больше одной открытой кассы; проверка
// выполняется под блокировкой, а частичный уникальный индекс в схеме
// закрывает гонку окончательно.
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

// Execute выполняет use case открытия кассы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenRegisterBox: user=%d, company=%d, opening=%.2f",
		req.UserID, req.CompanyID, req.OpeningAmount)

	if req.OpeningAmount < 0 {
		uc.logger.Warn("OpenRegisterBox: negative opening amount %.2f for user=%d", req.OpeningAmount, req.UserID)
		return nil, ErrNegativeOpeningAmount
	}

	now := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := uc.boxRepo.FindOpenByOwner(txCtx, req.UserID)
		if err == nil {
			uc.logger.Warn("OpenRegisterBox: user=%d already has an open box", req.UserID)
			return ErrOpenBoxExists
		}
		if !errors.Is(err, boxRepo.ErrBoxNotFound) {
			uc.logger.Error("OpenRegisterBox: failed to look up open box for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to look up open box: %v", ErrInternal, err)
		}

		box := &domain.RegisterBox{
			Name:          fmt.Sprintf("%s %s", req.UserName, now.Format(domain.BoxNameFormat)),
			OwnerUserID:   req.UserID,
			OpeningAmount: req.OpeningAmount,
			State:         domain.BoxOpen,
			Comment:       req.Comment,
			CompanyID:     req.CompanyID,
			OpenedAt:      now,
		}

		created, err := uc.boxRepo.CreateBox(txCtx, box)
		if err != nil {
			if errors.Is(err, boxRepo.ErrOpenBoxExists) {
				return ErrOpenBoxExists
			}
			uc.logger.Error("OpenRegisterBox: failed to create box for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to create box: %v", ErrInternal, err)
		}

		result = &Response{
			ID:            created.ID,
			Name:          created.Name,
			OwnerUserID:   created.OwnerUserID,
			OpeningAmount: created.OpeningAmount,
			State:         string(created.State),
			CompanyID:     created.CompanyID,
			OpenedAt:      created.OpenedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("OpenRegisterBox: box id=%d opened for user=%d", result.ID, req.UserID)
	return result, nil
}
