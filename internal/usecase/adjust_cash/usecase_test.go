package adjust_cash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	paymentformRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentform"
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

type fakeBoxRepo struct {
	box     *domain.RegisterBox
	created *domain.RegisterLine
}

func (f *fakeBoxRepo) GetBoxByIDForUpdate(_ context.Context, _ int64) (*domain.RegisterBox, error) {
	if f.box == nil {
		return nil, boxRepo.ErrBoxNotFound
	}
	return f.box, nil
}

func (f *fakeBoxRepo) CreateLine(_ context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error) {
	line.ID = 11
	f.created = line
	return line, nil
}

type fakeFormRepo struct {
	form *domain.PaymentForm
}

func (f *fakeFormRepo) GetByID(_ context.Context, _ int64) (*domain.PaymentForm, error) {
	if f.form == nil {
		return nil, paymentformRepo.ErrPaymentFormNotFound
	}
	return f.form, nil
}

func openBox() *domain.RegisterBox {
	return &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen}
}

func cashForm() *fakeFormRepo {
	return &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}
}

func TestAdjustCashSupplement(t *testing.T) {
	boxes := &fakeBoxRepo{box: openBox()}

	uc := NewUseCase(boxes, cashForm(), fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BoxID: 4, UserID: 7, Amount: 50.0, Kind: string(domain.LineSupplement), PaymentFormID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, resp.Amount)
	assert.Equal(t, string(domain.LineSupplement), resp.Kind)

	require.NotNil(t, boxes.created)
	assert.Equal(t, int64(2), boxes.created.CompanyID)
	assert.Equal(t, int64(7), boxes.created.CreatedBy)
}

func TestAdjustCashWithdrawalIsNegated(t *testing.T) {
	boxes := &fakeBoxRepo{box: openBox()}

	uc := NewUseCase(boxes, cashForm(), fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BoxID: 4, UserID: 7, Amount: 30.0, Kind: string(domain.LineWithdrawal), PaymentFormID: 1,
	})
	require.NoError(t, err)

	// изъятие хранится с минусом
	assert.Equal(t, -30.0, resp.Amount)
	require.NotNil(t, boxes.created)
	assert.Equal(t, -30.0, boxes.created.Amount)
}

func TestAdjustCashValidation(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{box: openBox()}, cashForm(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7, Amount: 10, Kind: "payment"})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7, Amount: 0, Kind: string(domain.LineSupplement)})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAdjustCashBoxNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{}, cashForm(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7, Amount: 10, Kind: string(domain.LineSupplement)})
	assert.ErrorIs(t, err, ErrBoxNotFound)
}

func TestAdjustCashNotOwner(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{box: openBox()}, cashForm(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 8, Amount: 10, Kind: string(domain.LineSupplement)})
	assert.ErrorIs(t, err, ErrNotBoxOwner)
}

func TestAdjustCashBoxClosed(t *testing.T) {
	box := openBox()
	box.State = domain.BoxClosed

	uc := NewUseCase(&fakeBoxRepo{box: box}, cashForm(), fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7, Amount: 10, Kind: string(domain.LineWithdrawal)})
	assert.ErrorIs(t, err, ErrBoxNotOpen)
}

func TestAdjustCashFormNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBoxRepo{box: openBox()}, &fakeFormRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BoxID: 4, UserID: 7, Amount: 10, Kind: string(domain.LineSupplement), PaymentFormID: 9})
	assert.ErrorIs(t, err, ErrPaymentFormNotFound)
}
