package create_queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case создания очереди.
// Очередь создаётся в состоянии provisional; места появятся только после
// явного вызова provisioning.
type UseCase struct {
	queueRepo QueueRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(queueRepo QueueRepository, logger Logger) *UseCase {
	return &UseCase{
		queueRepo: queueRepo,
		logger:    logger,
	}
}

// Execute выполняет use case создания очереди
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQueue: client=%d, company=%d, capacity=%d, initialSlot=%d",
		req.ClientID, req.CompanyID, req.ContractCapacity, req.InitialSlot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQueue: validation failed: %v", err)
		return nil, err
	}

	queue := &domain.Queue{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		ClientID:         req.ClientID,
		ContractCapacity: req.ContractCapacity,
		InitialSlot:      req.InitialSlot,
		CompanyID:        req.CompanyID,
		State:            domain.QueueProvisional,
		Active:           true,
	}

	created, err := uc.queueRepo.Create(ctx, queue)
	if err != nil {
		uc.logger.Error("CreateQueue: failed to create queue: %v", err)
		return nil, fmt.Errorf("%w: failed to create queue: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateQueue: successfully created queue id=%d", created.ID)
	return &Response{
		ID:               created.ID,
		Name:             created.Name,
		Description:      created.Description,
		ClientID:         created.ClientID,
		ContractCapacity: created.ContractCapacity,
		InitialSlot:      created.InitialSlot,
		CompanyID:        created.CompanyID,
		State:            string(created.State),
		CreatedAt:        created.CreatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if req.ContractCapacity < 0 {
		return ErrInvalidCapacity
	}
	if req.InitialSlot < 0 {
		return ErrInvalidInitialSlot
	}
	return nil
}
