package register_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
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

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

type fakeBoxRepo struct {
	box     *domain.RegisterBox
	lines   []*domain.RegisterLine
	created *domain.RegisterLine
}

func (f *fakeBoxRepo) FindOpenByOwner(_ context.Context, _ int64) (*domain.RegisterBox, error) {
	if f.box == nil {
		return nil, boxRepo.ErrBoxNotFound
	}
	return f.box, nil
}

func (f *fakeBoxRepo) ListLinesByBooking(_ context.Context, _ int64) ([]*domain.RegisterLine, error) {
	return f.lines, nil
}

func (f *fakeBoxRepo) CreateLine(_ context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error) {
	line.ID = 11
	line.CreatedAt = time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	f.created = line
	return line, nil
}

type fakeCostRuleRepo struct {
	rule *domain.CostRule
}

func (f *fakeCostRuleRepo) GetActiveByCompany(_ context.Context, _ int64) (*domain.CostRule, error) {
	if f.rule == nil {
		return nil, costruleRepo.ErrRuleNotFound
	}
	return f.rule, nil
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

// checkedOutBooking бронирование на три тарифных часа (2ч10м)
func checkedOutBooking() *domain.Booking {
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	checkout := checkin.Add(2*time.Hour + 10*time.Minute)
	return &domain.Booking{
		ID:         1,
		State:      domain.StateCheckout,
		CompanyID:  2,
		CheckinAt:  &checkin,
		CheckoutAt: &checkout,
	}
}

func newPaymentUseCase(bookings *fakeBookingRepo, boxes *fakeBoxRepo, rules *fakeCostRuleRepo, forms *fakeFormRepo) *UseCase {
	return NewUseCase(bookings, boxes, rules, forms, fakeTxManager{}, nopLogger{})
}

func TestRegisterPayment(t *testing.T) {
	boxes := &fakeBoxRepo{box: &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen}}
	rules := &fakeCostRuleRepo{rule: &domain.CostRule{HourlyRate: 20.0}}
	forms := &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, rules, forms)
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 40.0, PaymentFormID: 1})
	require.NoError(t, err)

	// 3 часа по 20.0, оплачено 40.0
	assert.Equal(t, 60.0, resp.TotalAmount)
	assert.Equal(t, 20.0, resp.Remaining)
	assert.Equal(t, string(domain.PaymentPartial), resp.PaymentStatus)
	assert.Equal(t, int64(4), resp.BoxID)

	require.NotNil(t, boxes.created)
	assert.Equal(t, domain.LinePayment, boxes.created.Kind)
	require.NotNil(t, boxes.created.BookingID)
	assert.Equal(t, int64(1), *boxes.created.BookingID)
	assert.Equal(t, int64(2), boxes.created.CompanyID)
}

func TestRegisterPaymentSettles(t *testing.T) {
	boxes := &fakeBoxRepo{
		box:   &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen},
		lines: []*domain.RegisterLine{{Kind: domain.LinePayment, Amount: 40.0}},
	}
	rules := &fakeCostRuleRepo{rule: &domain.CostRule{HourlyRate: 20.0}}
	forms := &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, rules, forms)
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 20.0, PaymentFormID: 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Remaining)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
}

func TestRegisterPaymentInvalidAmount(t *testing.T) {
	uc := newPaymentUseCase(&fakeBookingRepo{}, &fakeBoxRepo{}, &fakeCostRuleRepo{}, &fakeFormRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: -5})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRegisterPaymentNotCheckedOut(t *testing.T) {
	booking := checkedOutBooking()
	booking.CheckoutAt = nil

	uc := newPaymentUseCase(&fakeBookingRepo{booking: booking}, &fakeBoxRepo{}, &fakeCostRuleRepo{}, &fakeFormRepo{})
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 10})
	assert.ErrorIs(t, err, ErrNotCheckedOut)
}

func TestRegisterPaymentNoOpenBox(t *testing.T) {
	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, &fakeBoxRepo{}, &fakeCostRuleRepo{}, &fakeFormRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 10})
	assert.ErrorIs(t, err, ErrNoOpenBox)
}

func TestRegisterPaymentAlreadyPaid(t *testing.T) {
	boxes := &fakeBoxRepo{
		box:   &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen},
		lines: []*domain.RegisterLine{{Kind: domain.LinePayment, Amount: 60.0}},
	}
	rules := &fakeCostRuleRepo{rule: &domain.CostRule{HourlyRate: 20.0}}
	forms := &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, rules, forms)
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 10, PaymentFormID: 1})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRegisterPaymentExceedsRemaining(t *testing.T) {
	boxes := &fakeBoxRepo{box: &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen}}
	rules := &fakeCostRuleRepo{rule: &domain.CostRule{HourlyRate: 20.0}}
	forms := &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, rules, forms)
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 60.01, PaymentFormID: 1})
	assert.ErrorIs(t, err, ErrAmountExceedsRemaining)
}

func TestRegisterPaymentNoActiveRate(t *testing.T) {
	// без тарифа счёт нулевой, платить нечего
	boxes := &fakeBoxRepo{box: &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen}}
	forms := &fakeFormRepo{form: &domain.PaymentForm{ID: 1, Name: "Cash"}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, &fakeCostRuleRepo{}, forms)
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 10, PaymentFormID: 1})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRegisterPaymentFormNotFound(t *testing.T) {
	boxes := &fakeBoxRepo{box: &domain.RegisterBox{ID: 4, OwnerUserID: 7, CompanyID: 2, State: domain.BoxOpen}}

	uc := newPaymentUseCase(&fakeBookingRepo{booking: checkedOutBooking()}, boxes, &fakeCostRuleRepo{}, &fakeFormRepo{})
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7, Amount: 10, PaymentFormID: 9})
	assert.ErrorIs(t, err, ErrPaymentFormNotFound)
}
