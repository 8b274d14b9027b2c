package reverse_line

import (
	"context"
	"testing"

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

type fakeBoxRepo struct {
	box      *domain.RegisterBox
	line     *domain.RegisterLine
	reversed bool
	created  *domain.RegisterLine
}

func (f *fakeBoxRepo) GetBoxByIDForUpdate(_ context.Context, _ int64) (*domain.RegisterBox, error) {
	if f.box == nil {
		return nil, boxRepo.ErrBoxNotFound
	}
	return f.box, nil
}

func (f *fakeBoxRepo) GetLineByID(_ context.Context, _ int64) (*domain.RegisterLine, error) {
	if f.line == nil {
		return nil, boxRepo.ErrLineNotFound
	}
	return f.line, nil
}

func (f *fakeBoxRepo) HasReversal(_ context.Context, _ int64) (bool, error) {
	return f.reversed, nil
}

func (f *fakeBoxRepo) CreateLine(_ context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error) {
	line.ID = 12
	f.created = line
	return line, nil
}

func paymentLine() *domain.RegisterLine {
	bookingID := int64(9)
	return &domain.RegisterLine{
		ID:            11,
		BoxID:         4,
		PaymentFormID: 1,
		Amount:        60.0,
		Kind:          domain.LinePayment,
		BookingID:     &bookingID,
	}
}

func repoWith(line *domain.RegisterLine) *fakeBoxRepo {
	return &fakeBoxRepo{
		box:  &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen},
		line: line,
	}
}

func TestReverseLine(t *testing.T) {
	boxes := repoWith(paymentLine())

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60.0})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ReversedLineID)
	assert.Equal(t, -60.0, resp.Amount)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(9), *resp.BookingID)

	// сторно наследует форму оплаты и бронирование исходной проводки
	require.NotNil(t, boxes.created)
	assert.Equal(t, domain.LineReversal, boxes.created.Kind)
	assert.Equal(t, int64(1), boxes.created.PaymentFormID)
	require.NotNil(t, boxes.created.ReversedLineID)
	assert.Equal(t, int64(11), *boxes.created.ReversedLineID)
}

func TestReverseLinePartial(t *testing.T) {
	boxes := repoWith(paymentLine())

	uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -20.0})
	require.NoError(t, err)
	assert.Equal(t, -20.0, resp.Amount)
}

func TestReverseLineGuards(t *testing.T) {
	t.Run("box not found", func(t *testing.T) {
		uc := NewUseCase(&fakeBoxRepo{}, fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60})
		assert.ErrorIs(t, err, ErrBoxNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		uc := NewUseCase(repoWith(paymentLine()), fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 8, Amount: -60})
		assert.ErrorIs(t, err, ErrNotBoxOwner)
	})

	t.Run("box closed", func(t *testing.T) {
		boxes := repoWith(paymentLine())
		boxes.box.State = domain.BoxClosed

		uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60})
		assert.ErrorIs(t, err, ErrBoxNotOpen)
	})

	t.Run("line not found", func(t *testing.T) {
		uc := NewUseCase(repoWith(nil), fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60})
		assert.ErrorIs(t, err, ErrLineNotFound)
	})

	t.Run("line from another box", func(t *testing.T) {
		line := paymentLine()
		line.BoxID = 5

		uc := NewUseCase(repoWith(line), fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60})
		assert.ErrorIs(t, err, ErrLineNotInBox)
	})

	t.Run("reversal of a reversal", func(t *testing.T) {
		line := paymentLine()
		line.Kind = domain.LineReversal

		uc := NewUseCase(repoWith(line), fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: 60})
		assert.ErrorIs(t, err, ErrLineIsReversal)
	})

	t.Run("already reversed", func(t *testing.T) {
		boxes := repoWith(paymentLine())
		boxes.reversed = true

		uc := NewUseCase(boxes, fakeTxManager{}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: -60})
		assert.ErrorIs(t, err, ErrAlreadyReversed)
	})
}

func TestReverseLineAmountValidation(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"zero", 0},
		{"same sign", 60.0},
		{"magnitude exceeds original", -60.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(repoWith(paymentLine()), fakeTxManager{}, nopLogger{})
			_, err := uc.Execute(context.Background(), &Request{BoxID: 4, LineID: 11, UserID: 7, Amount: tt.amount})
			assert.ErrorIs(t, err, ErrInvalidReversalAmount)
		})
	}
}
