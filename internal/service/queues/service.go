package queues

import (
	"context"
	"errors"
	"fmt"

	queueRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/queue"
	"github.com/m04kA/SMC-ParkingService/internal/service/queues/models"
)

// Service сервис чтения очередей и их мест
type Service struct {
	queueRepo QueueRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса очередей
func NewService(queueRepo QueueRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		queueRepo: queueRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// GetByID получает очередь вместе с её местами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.QueueResponse, error) {
	s.logger.Info("GetByID: fetching queue id=%d", id)

	queue, err := s.queueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			s.logger.Warn("GetByID: queue id=%d not found", id)
			return nil, ErrQueueNotFound
		}
		s.logger.Error("GetByID: repository error for queue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByQueue(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list slots for queue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list slots: %v", ErrInternal, err)
	}

	resp := models.FromDomainQueue(queue)
	resp.Slots = models.FromDomainSlots(slots)
	return resp, nil
}

// ListByCompany получает очереди двора без мест
func (s *Service) ListByCompany(ctx context.Context, companyID int64) (*models.QueueListResponse, error) {
	s.logger.Info("ListByCompany: fetching queues for company=%d", companyID)

	queues, err := s.queueRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("ListByCompany: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListByCompany - repository error: %v", ErrInternal, err)
	}

	items := make([]models.QueueResponse, 0, len(queues))
	for _, q := range queues {
		items = append(items, *models.FromDomainQueue(q))
	}
	return &models.QueueListResponse{Queues: items}, nil
}
