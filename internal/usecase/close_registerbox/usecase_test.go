package close_registerbox

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

type closeCall struct {
	boxID    int64
	closedBy int64
	at       time.Time
}

type fakeBoxRepo struct {
	box      *domain.RegisterBox
	lines    []*domain.RegisterLine
	closeErr error
	closed   *closeCall
}

func (f *fakeBoxRepo) GetBoxByIDForUpdate(_ context.Context, _ int64) (*domain.RegisterBox, error) {
	if f.box == nil {
		return nil, boxRepo.ErrBoxNotFound
	}
	return f.box, nil
}

func (f *fakeBoxRepo) ListLinesByBox(_ context.Context, _ int64) ([]*domain.RegisterLine, error) {
	return f.lines, nil
}

func (f *fakeBoxRepo) CloseBox(_ context.Context, id, closedBy int64, _ *string, at time.Time) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed = &closeCall{boxID: id, closedBy: closedBy, at: at}
	return nil
}

func openBox() *domain.RegisterBox {
	return &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, OpeningAmount: 100.0, State: domain.BoxOpen}
}

func TestCloseRegisterBox(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	boxes := &fakeBoxRepo{
		box: openBox(),
		lines: []*domain.RegisterLine{
			{Kind: domain.LinePayment, Amount: 60.0},
			{Kind: domain.LineWithdrawal, Amount: -30.0},
		},
	}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fakeClock{now: now}

	resp, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, string(domain.BoxClosed), resp.State)
	assert.Equal(t, 130.0, resp.ClosingValue)
	assert.Equal(t, now, resp.ClosedAt)
	require.NotNil(t, boxes.closed)
	assert.Equal(t, int64(7), boxes.closed.closedBy)
}

func TestCloseRegisterBoxByAdmin(t *testing.T) {
	boxes := &fakeBoxRepo{box: openBox()}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 99, CanCloseAny: true})
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ClosedBy)
}

func TestCloseRegisterBoxAccessDenied(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{box: openBox()}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCloseRegisterBoxNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7})
	assert.ErrorIs(t, err, ErrBoxNotFound)
}

func TestCloseRegisterBoxAlreadyClosed(t *testing.T) {
	box := openBox()
	box.State = domain.BoxClosed

	uc := NewUseCase(&fakeBoxRepo{box: box}, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7})
	assert.ErrorIs(t, err, ErrBoxAlreadyClosed)
}

func TestCloseRegisterBoxCloseRace(t *testing.T) {
	boxes := &fakeBoxRepo{box: openBox(), closeErr: boxRepo.ErrBoxNotOpen}

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7})
	assert.ErrorIs(t, err, ErrBoxAlreadyClosed)
}
