package open_registerbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeBoxRepo struct {
	open      *domain.RegisterBox
	createErr error
	created   *domain.RegisterBox
}

func (f *fakeBoxRepo) FindOpenByOwner(_ context.Context, _ int64) (*domain.RegisterBox, error) {
	if f.open == nil {
		return nil, boxRepo.ErrBoxNotFound
	}
	return f.open, nil
}

func (f *fakeBoxRepo) CreateBox(_ context.Context, box *domain.RegisterBox) (*domain.RegisterBox, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	box.ID = 4
	f.created = box
	return box, nil
}

func TestOpenRegisterBox(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 15, 0, time.UTC)
	boxes := &fakeBoxRepo{}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fakeClock{now: now}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		UserName:      "maria",
		CompanyID:     2,
		OpeningAmount: 100.0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "maria 10/03/2025 09:30:15", resp.Name)
	assert.Equal(t, string(domain.BoxOpen), resp.State)
	assert.Equal(t, 100.0, resp.OpeningAmount)
	assert.Equal(t, now, resp.OpenedAt)

	require.NotNil(t, boxes.created)
	assert.Equal(t, int64(7), boxes.created.OwnerUserID)
	assert.Equal(t, int64(2), boxes.created.CompanyID)
}

func TestOpenRegisterBoxNegativeAmount(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, OpeningAmount: -1})
	assert.ErrorIs(t, err, ErrNegativeOpeningAmount)
}

func TestOpenRegisterBoxAlreadyOpen(t *testing.T) {
	boxes := &fakeBoxRepo{open: &domain.RegisterBox{ID: 3, OwnerUserID: 7, State: domain.BoxOpen}}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{UserID: 7, OpeningAmount: 50})
	assert.ErrorIs(t, err, ErrOpenBoxExists)
}

func TestOpenRegisterBoxCreateRace(t *testing.T) {
	// уникальный индекс поймал гонку на вставке
	boxes := &fakeBoxRepo{createErr: boxRepo.ErrOpenBoxExists}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{UserID: 7, OpeningAmount: 50})
	assert.ErrorIs(t, err, ErrOpenBoxExists)
}
