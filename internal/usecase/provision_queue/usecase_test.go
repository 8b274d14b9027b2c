package provision_queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	queueRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/queue"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeQueueRepo struct {
	queue       *domain.Queue
	getErr      error
	activateErr error
	activated   bool
}

func (f *fakeQueueRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Queue, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.queue, nil
}

func (f *fakeQueueRepo) Activate(_ context.Context, _ int64) error {
	if f.activateErr != nil {
		return f.activateErr
	}
	f.activated = true
	return nil
}

type fakeSlotRepo struct {
	created   []*domain.Slot
	createErr error
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.Slot) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, slots...)
	return nil
}

func (f *fakeSlotRepo) CountByQueue(_ context.Context, _ int64) (int, error) {
	return len(f.created), nil
}

func TestProvisionQueue(t *testing.T) {
	queues := &fakeQueueRepo{queue: &domain.Queue{
		ID:               1,
		State:            domain.QueueProvisional,
		ContractCapacity: 3,
		InitialSlot:      8,
		CompanyID:        2,
	}}
	slots := &fakeSlotRepo{}

	uc := NewUseCase(queues, slots, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{QueueID: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.SlotsCreated)
	assert.Equal(t, string(domain.QueueActive), resp.State)
	assert.Equal(t, []string{"08", "09", "10"}, resp.SlotCodes)
	assert.True(t, queues.activated)

	require.Len(t, slots.created, 3)
	for _, s := range slots.created {
		assert.Equal(t, int64(1), s.QueueID)
		assert.Equal(t, int64(2), s.CompanyID)
		assert.Equal(t, domain.SlotFree, s.State)
		assert.True(t, s.Active)
	}
}

func TestProvisionQueueValidation(t *testing.T) {
	tests := []struct {
		name  string
		queue *domain.Queue
		want  error
	}{
		{
			"already active",
			&domain.Queue{ID: 1, State: domain.QueueActive, ContractCapacity: 3, InitialSlot: 1},
			ErrAlreadyProvisioned,
		},
		{
			"capacity of one",
			&domain.Queue{ID: 1, State: domain.QueueProvisional, ContractCapacity: 1, InitialSlot: 1},
			ErrCapacityTooSmall,
		},
		{
			"zero initial slot",
			&domain.Queue{ID: 1, State: domain.QueueProvisional, ContractCapacity: 3, InitialSlot: 0},
			ErrInvalidInitialSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &fakeSlotRepo{}
			uc := NewUseCase(&fakeQueueRepo{queue: tt.queue}, slots, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{QueueID: 1})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, slots.created)
		})
	}
}

func TestProvisionQueueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeQueueRepo{getErr: queueRepo.ErrQueueNotFound}, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{QueueID: 99})
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestProvisionQueueActivationRace(t *testing.T) {
	queues := &fakeQueueRepo{
		queue: &domain.Queue{
			ID:               1,
			State:            domain.QueueProvisional,
			ContractCapacity: 2,
			InitialSlot:      1,
		},
		activateErr: queueRepo.ErrQueueNotFound,
	}

	uc := NewUseCase(queues, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{QueueID: 1})
	assert.ErrorIs(t, err, ErrAlreadyProvisioned)
}
