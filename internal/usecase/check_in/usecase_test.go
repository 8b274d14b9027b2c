package check_in

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
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

type checkedInCall struct {
	bookingID int64
	slotID    int64
	queueID   *int64
	companyID int64
	userID    int64
	at        time.Time
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	setErr   error

	checkedIn *checkedInCall
	notes     []*domain.BookingNote
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBookingRepo) SetCheckedIn(_ context.Context, id, slotID int64, queueID *int64, companyID, userID int64, at time.Time) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.checkedIn = &checkedInCall{id, slotID, queueID, companyID, userID, at}
	return nil
}

func (f *fakeBookingRepo) AddNote(_ context.Context, note *domain.BookingNote) error {
	f.notes = append(f.notes, note)
	return nil
}

type fakeSlotRepo struct {
	slot      *domain.Slot
	occupyErr error
	occupied  bool
}

func (f *fakeSlotRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) Occupy(_ context.Context, _, _ int64) error {
	if f.occupyErr != nil {
		return f.occupyErr
	}
	f.occupied = true
	return nil
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

func newCheckInUseCase(
	bookings *fakeBookingRepo,
	slots *fakeSlotRepo,
	cameras *fakeCameraRepo,
	attachments *fakeAttachmentRepo,
	client *fakeCameraClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, slots, cameras, attachments, client, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fakeClock{now: now}
	return uc
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateScheduled, TractorPlate: "ABC1234"},
	}}
	slots := &fakeSlotRepo{slot: &domain.Slot{
		ID:        5,
		Code:      "08",
		QueueID:   3,
		CompanyID: 2,
		State:     domain.SlotFree,
	}}
	cameras := &fakeCameraRepo{camera: &domain.Camera{ID: 1, Name: "gate-in", Role: domain.CameraCheckin}}
	attachments := &fakeAttachmentRepo{}
	client := &fakeCameraClient{image: []byte("jpeg")}

	uc := newCheckInUseCase(bookings, slots, cameras, attachments, client, now)
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5, UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "08", resp.SlotCode)
	assert.Equal(t, string(domain.StateCheckin), resp.State)
	assert.Equal(t, now, resp.CheckinAt)
	assert.True(t, slots.occupied)

	// очередь и двор наследуются от места
	require.NotNil(t, bookings.checkedIn)
	require.NotNil(t, bookings.checkedIn.queueID)
	assert.Equal(t, int64(3), *bookings.checkedIn.queueID)
	assert.Equal(t, int64(2), bookings.checkedIn.companyID)
	assert.Equal(t, int64(7), bookings.checkedIn.userID)

	// снимок сохранён и отмечен в ленте
	require.NotNil(t, resp.PhotoAttachmentID)
	assert.Equal(t, int64(42), *resp.PhotoAttachmentID)
	require.NotNil(t, attachments.created)
	assert.Equal(t, []byte("jpeg"), attachments.created.Content)
	require.Len(t, bookings.notes, 1)
	assert.Contains(t, bookings.notes[0].Body, "captured by camera gate-in")
}

func TestCheckInSlotRequired(t *testing.T) {
	uc := newCheckInUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	assert.ErrorIs(t, err, ErrSlotRequired)
}

func TestCheckInBookingNotFound(t *testing.T) {
	uc := newCheckInUseCase(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakeSlotRepo{}, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckInInvalidTransition(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateCheckout},
	}}

	uc := newCheckInUseCase(bookings, &fakeSlotRepo{}, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckInSlotOccupied(t *testing.T) {
	holderID := int64(9)
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateScheduled},
		9: {ID: 9, State: domain.StateCheckin, TractorPlate: "XYZ9876"},
	}}
	slots := &fakeSlotRepo{slot: &domain.Slot{
		ID:        5,
		Code:      "08",
		State:     domain.SlotOccupied,
		BookingID: &holderID,
	}}

	uc := newCheckInUseCase(bookings, slots, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5})

	var occupied *SlotOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "08", occupied.SlotCode)
	assert.Equal(t, "XYZ9876", occupied.OccupyingPlate)
}

func TestCheckInOccupyRace(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateScheduled},
	}}
	slots := &fakeSlotRepo{
		slot:      &domain.Slot{ID: 5, Code: "08", State: domain.SlotFree},
		occupyErr: slotRepo.ErrSlotNotFound,
	}

	uc := newCheckInUseCase(bookings, slots, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())
	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5})

	var occupied *SlotOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "08", occupied.SlotCode)
}

func TestCheckInSnapshotFailure(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateScheduled},
	}}
	slots := &fakeSlotRepo{slot: &domain.Slot{ID: 5, Code: "08", QueueID: 3, CompanyID: 2, State: domain.SlotFree}}
	cameras := &fakeCameraRepo{camera: &domain.Camera{ID: 1, Name: "gate-in", Role: domain.CameraCheckin}}
	client := &fakeCameraClient{err: errors.New("connection refused")}

	uc := newCheckInUseCase(bookings, slots, cameras, &fakeAttachmentRepo{}, client, time.Now())
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5, UserID: 7})
	require.NoError(t, err)

	// неудача снимка не отменяет заезд, но оставляет заметку
	assert.Nil(t, resp.PhotoAttachmentID)
	require.Len(t, bookings.notes, 1)
	assert.Contains(t, bookings.notes[0].Body, "capture failed")
}

func TestCheckInNoCamera(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, State: domain.StateProvisional},
	}}
	slots := &fakeSlotRepo{slot: &domain.Slot{ID: 5, Code: "08", QueueID: 3, CompanyID: 2, State: domain.SlotFree}}

	uc := newCheckInUseCase(bookings, slots, &fakeCameraRepo{}, &fakeAttachmentRepo{}, &fakeCameraClient{}, time.Now())
	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, SlotID: 5, UserID: 7})
	require.NoError(t, err)

	assert.Nil(t, resp.PhotoAttachmentID)
	assert.Empty(t, bookings.notes)
}
