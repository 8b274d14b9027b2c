package provision_queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	queueRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/queue"
)

// UseCase use case provisioning очереди: материализует места по контракту
// и переводит очередь в состояние active. Повторный provisioning невозможен.
type UseCase struct {
	queueRepo QueueRepository
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo: queueRepo,
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case provisioning.
// Вся операция атомарна: либо создаются все места и очередь активируется,
// либо не создаётся ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProvisionQueue: queue=%d", req.QueueID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем строку очереди на время всей операции
		queue, err := uc.queueRepo.GetByIDForUpdate(txCtx, req.QueueID)
		if err != nil {
			if errors.Is(err, queueRepo.ErrQueueNotFound) {
				uc.logger.Warn("ProvisionQueue: queue id=%d not found", req.QueueID)
				return ErrQueueNotFound
			}
			uc.logger.Error("ProvisionQueue: failed to get queue id=%d: %v", req.QueueID, err)
			return fmt.Errorf("%w: failed to get queue: %v", ErrInternal, err)
		}

		if err := validateQueue(queue); err != nil {
			uc.logger.Warn("ProvisionQueue: queue id=%d not eligible: %v", req.QueueID, err)
			return err
		}

		slots := buildSlots(queue)
		if err := uc.slotRepo.CreateBatch(txCtx, slots); err != nil {
			uc.logger.Error("ProvisionQueue: failed to create slots for queue id=%d: %v", req.QueueID, err)
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}

		if err := uc.queueRepo.Activate(txCtx, queue.ID); err != nil {
			if errors.Is(err, queueRepo.ErrQueueNotFound) {
				// Состояние сменилось под ногами, гонку поймала блокировка
				return ErrAlreadyProvisioned
			}
			uc.logger.Error("ProvisionQueue: failed to activate queue id=%d: %v", req.QueueID, err)
			return fmt.Errorf("%w: failed to activate queue: %v", ErrInternal, err)
		}

		codes := make([]string, 0, len(slots))
		for _, s := range slots {
			codes = append(codes, s.Code)
		}
		result = &Response{
			QueueID:      queue.ID,
			State:        string(domain.QueueActive),
			SlotsCreated: len(slots),
			SlotCodes:    codes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ProvisionQueue: queue id=%d provisioned with %d slots", req.QueueID, result.SlotsCreated)
	return result, nil
}

// validateQueue раскладывает предикат CanProvision на адресные ошибки
func validateQueue(q *domain.Queue) error {
	if q.State != domain.QueueProvisional {
		return ErrAlreadyProvisioned
	}
	if q.ContractCapacity <= 1 {
		return ErrCapacityTooSmall
	}
	if q.InitialSlot <= 0 {
		return ErrInvalidInitialSlot
	}
	return nil
}

// buildSlots нумерует места с InitialSlot, коды дополняются нулями слева
func buildSlots(q *domain.Queue) []*domain.Slot {
	slots := make([]*domain.Slot, 0, q.ContractCapacity)
	for i := 0; i < q.ContractCapacity; i++ {
		slots = append(slots, &domain.Slot{
			Code:      fmt.Sprintf("%0*d", domain.SlotCodePadding, q.InitialSlot+i),
			QueueID:   q.ID,
			CompanyID: q.CompanyID,
			State:     domain.SlotFree,
			Active:    true,
		})
	}
	return slots
}
