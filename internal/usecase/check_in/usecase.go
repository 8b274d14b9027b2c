package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// UseCase use case заезда машины во двор.
// Захват места и смена состояния бронирования выполняются в одной
// сериализуемой транзакции; снимок камеры делается после фиксации и
// на исход заезда не влияет.
type UseCase struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	cameraRepo     CameraRepository
	attachmentRepo AttachmentRepository
	cameraClient   CameraClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	slotRepository SlotRepository,
	cameraRepository CameraRepository,
	attachmentRepo AttachmentRepository,
	cameraClient CameraClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepository,
		slotRepo:       slotRepository,
		cameraRepo:     cameraRepository,
		attachmentRepo: attachmentRepo,
		cameraClient:   cameraClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case заезда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: booking=%d, slot=%d, user=%d", req.BookingID, req.SlotID, req.UserID)

	if req.SlotID == 0 {
		uc.logger.Warn("CheckIn: booking=%d has no slot in request", req.BookingID)
		return nil, ErrSlotRequired
	}

	now := uc.timeProvider.Now()

	var result *Response
	var companyID int64

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем бронирование и место на время транзакции
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckIn: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckIn: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(domain.StateCheckin) {
			uc.logger.Warn("CheckIn: booking id=%d in state=%s cannot check in", booking.ID, booking.State)
			return ErrInvalidTransition
		}

		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CheckIn: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CheckIn: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.IsFree() {
			return uc.slotOccupied(txCtx, slot)
		}

		if err := uc.slotRepo.Occupy(txCtx, slot.ID, booking.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				// Место перехватили между SELECT и UPDATE
				return uc.slotOccupied(txCtx, slot)
			}
			uc.logger.Error("CheckIn: failed to occupy slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to occupy slot: %v", ErrInternal, err)
		}

		// Очередь и двор наследуются от места, если у бронирования их нет
		queueID := booking.QueueID
		if queueID == nil {
			queueID = &slot.QueueID
		}
		companyID = booking.CompanyID
		if companyID == 0 {
			companyID = slot.CompanyID
		}

		if err := uc.bookingRepo.SetCheckedIn(txCtx, booking.ID, slot.ID, queueID, companyID, req.UserID, now); err != nil {
			uc.logger.Error("CheckIn: failed to mark booking id=%d checked in: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to mark booking checked in: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID: booking.ID,
			SlotID:    slot.ID,
			SlotCode:  slot.Code,
			QueueID:   queueID,
			State:     string(domain.StateCheckin),
			CheckinAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Снимок въезда вне транзакции: его неудача фиксируется заметкой,
	// но заезд уже состоялся
	result.PhotoAttachmentID = uc.capturePhoto(ctx, req.BookingID, req.UserID, companyID)

	uc.logger.Info("CheckIn: booking id=%d checked in to slot %s", req.BookingID, result.SlotCode)
	return result, nil
}

// slotOccupied строит ошибку конфликта с номером машины, держащей место
func (uc *UseCase) slotOccupied(ctx context.Context, slot *domain.Slot) error {
	occupied := &SlotOccupiedError{SlotCode: slot.Code}
	if slot.BookingID != nil {
		holder, err := uc.bookingRepo.GetByID(ctx, *slot.BookingID)
		if err == nil {
			occupied.OccupyingPlate = holder.TractorPlate
		}
	}
	uc.logger.Warn("CheckIn: %v", occupied)
	return occupied
}

// capturePhoto делает снимок камерой въезда и пишет итог в ленту бронирования.
// Любая неудача логируется и не прерывает операцию.
func (uc *UseCase) capturePhoto(ctx context.Context, bookingID, userID, companyID int64) *int64 {
	cam, err := uc.cameraRepo.FindByRole(ctx, companyID, domain.CameraCheckin)
	if err != nil {
		if !errors.Is(err, cameraRepo.ErrCameraNotFound) {
			uc.logger.Error("CheckIn: failed to look up check-in camera for company=%d: %v", companyID, err)
		}
		return nil
	}

	image, err := uc.cameraClient.CaptureSnapshot(ctx, cam)
	if err != nil {
		uc.logger.Warn("CheckIn: snapshot failed for booking id=%d: %v", bookingID, err)
		uc.addNote(ctx, bookingID, userID, fmt.Sprintf("Check-in photo capture failed: camera %s unreachable", cam.Name))
		return nil
	}

	attachment, err := uc.attachmentRepo.Create(ctx, &domain.Attachment{
		Key:       uuid.NewString(),
		Name:      fmt.Sprintf("checkin_%d.jpg", bookingID),
		MimeType:  "image/jpeg",
		Content:   image,
		BookingID: &bookingID,
	})
	if err != nil {
		uc.logger.Error("CheckIn: failed to store snapshot for booking id=%d: %v", bookingID, err)
		return nil
	}

	uc.addNote(ctx, bookingID, userID, fmt.Sprintf("Check-in photo captured by camera %s", cam.Name))
	return &attachment.ID
}

func (uc *UseCase) addNote(ctx context.Context, bookingID, userID int64, body string) {
	note := &domain.BookingNote{
		BookingID: bookingID,
		Body:      body,
		CreatedBy: &userID,
	}
	if err := uc.bookingRepo.AddNote(ctx, note); err != nil {
		uc.logger.Error("CheckIn: failed to add note for booking id=%d: %v", bookingID, err)
	}
}
