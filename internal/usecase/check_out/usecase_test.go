package check_out

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
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

type fakeBookingRepo struct {
	booking    *domain.Booking
	checkedOut bool
	notes      []*domain.BookingNote
}

func (f *fakeBookingRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) SetCheckedOut(_ context.Context, _, _ int64, _ time.Time) error {
	f.checkedOut = true
	return nil
}

func (f *fakeBookingRepo) AddNote(_ context.Context, note *domain.BookingNote) error {
	f.notes = append(f.notes, note)
	return nil
}

type fakeSlotRepo struct {
	slot     *domain.Slot
	released bool
}

func (f *fakeSlotRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Slot, error) {
	if f.slot == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) Release(_ context.Context, _ int64) error {
	f.released = true
	return nil
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

type fakeLedgerRepo struct {
	lines []*domain.RegisterLine
}

func (f *fakeLedgerRepo) ListLinesByBooking(_ context.Context, _ int64) ([]*domain.RegisterLine, error) {
	return f.lines, nil
}

type fakeCameraRepo struct {
	camera *domain.Camera
}

func (f *fakeCameraRepo) FindByRole(_ context.Context, _ int64, _ domain.CameraRole) (*domain.Camera, error) {
	if f.camera == nil {
		return nil, cameraRepo.ErrCameraNotFound
	}
	return f.camera, nil
}

type fakeAttachmentRepo struct {
	created *domain.Attachment
}

func (f *fakeAttachmentRepo) Create(_ context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	a.ID = 42
	f.created = a
	return a, nil
}

type fakeCameraClient struct {
	image []byte
	err   error
}

func (f *fakeCameraClient) CaptureSnapshot(_ context.Context, _ *domain.Camera) ([]byte, error) {
	return f.image, f.err
}

type checkOutFixture struct {
	bookings    *fakeBookingRepo
	slots       *fakeSlotRepo
	rules       *fakeCostRuleRepo
	ledger      *fakeLedgerRepo
	cameras     *fakeCameraRepo
	attachments *fakeAttachmentRepo
	client      *fakeCameraClient
	uc          *UseCase
}

func newFixture(booking *domain.Booking, now time.Time) *checkOutFixture {
	f := &checkOutFixture{
		bookings:    &fakeBookingRepo{booking: booking},
		slots:       &fakeSlotRepo{},
		rules:       &fakeCostRuleRepo{},
		ledger:      &fakeLedgerRepo{},
		cameras:     &fakeCameraRepo{},
		attachments: &fakeAttachmentRepo{},
		client:      &fakeCameraClient{},
	}
	f.uc = NewUseCase(f.bookings, f.slots, f.rules, f.ledger, f.cameras, f.attachments, f.client, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fakeClock{now: now}
	return f
}

func checkedInBooking(checkin time.Time) *domain.Booking {
	slotID := int64(5)
	return &domain.Booking{
		ID:        1,
		State:     domain.StateCheckin,
		SlotID:    &slotID,
		CompanyID: 2,
		CheckinAt: &checkin,
	}
}

func TestCheckOut(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	now := checkin.Add(2*time.Hour + 10*time.Minute)

	f := newFixture(checkedInBooking(checkin), now)
	f.slots.slot = &domain.Slot{ID: 5, State: domain.SlotOccupied, BookingID: &f.bookings.booking.ID}
	f.rules.rule = &domain.CostRule{HourlyRate: 20.0}
	f.ledger.lines = []*domain.RegisterLine{{Kind: domain.LinePayment, Amount: 25.0}}

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateCheckout), resp.State)
	assert.Equal(t, 3, resp.Hours)
	assert.Equal(t, 20.0, resp.HourlyRate)
	assert.Equal(t, 60.0, resp.TotalAmount)
	assert.Equal(t, 25.0, resp.PaidAmount)
	assert.Equal(t, 35.0, resp.Remaining)
	assert.Equal(t, string(domain.PaymentPartial), resp.PaymentStatus)

	assert.True(t, f.bookings.checkedOut)
	assert.True(t, f.slots.released)
}

func TestCheckOutNotCheckedIn(t *testing.T) {
	booking := checkedInBooking(time.Now())
	booking.State = domain.StateScheduled

	f := newFixture(booking, time.Now())
	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestCheckOutBookingNotFound(t *testing.T) {
	f := newFixture(nil, time.Now())

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckOutReassignedSlotKept(t *testing.T) {
	// место перевыдано другому бронированию, освобождать его нельзя
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	other := int64(9)

	f := newFixture(checkedInBooking(checkin), checkin.Add(time.Hour))
	f.slots.slot = &domain.Slot{ID: 5, State: domain.SlotOccupied, BookingID: &other}

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	require.NoError(t, err)
	assert.False(t, f.slots.released)
	assert.True(t, f.bookings.checkedOut)
}

func TestCheckOutWithoutRate(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	f := newFixture(checkedInBooking(checkin), checkin.Add(time.Hour))
	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.TotalAmount)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
}

func TestCheckOutSnapshot(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	f := newFixture(checkedInBooking(checkin), checkin.Add(time.Hour))
	f.cameras.camera = &domain.Camera{ID: 2, Name: "gate-out", Role: domain.CameraCheckout}
	f.client.image = []byte("jpeg")

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 7})
	require.NoError(t, err)

	require.NotNil(t, resp.PhotoAttachmentID)
	assert.Equal(t, int64(42), *resp.PhotoAttachmentID)
	require.Len(t, f.bookings.notes, 1)
	assert.Contains(t, f.bookings.notes[0].Body, "captured by camera gate-out")
}
