package check_out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// UseCase use case выезда машины со двора.
// Освобождение места и смена состояния атомарны; место освобождается
// только если его держит именно это бронирование. Счёт считается на лету
// по активному тарифу, снимок выезда делается после фиксации.
type UseCase struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	costRuleRepo   CostRuleRepository
	ledgerRepo     LedgerRepository
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
	costRuleRepository CostRuleRepository,
	ledgerRepo LedgerRepository,
	cameraRepository CameraRepository,
	attachmentRepo AttachmentRepository,
	cameraClient CameraClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepository,
		slotRepo:       slotRepository,
		costRuleRepo:   costRuleRepository,
		ledgerRepo:     ledgerRepo,
		cameraRepo:     cameraRepository,
		attachmentRepo: attachmentRepo,
		cameraClient:   cameraClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case выезда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: booking=%d, user=%d", req.BookingID, req.UserID)

	now := uc.timeProvider.Now()

	var booking *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckOut: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckOut: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(domain.StateCheckout) {
			uc.logger.Warn("CheckOut: booking id=%d in state=%s is not checked in", booking.ID, booking.State)
			return ErrNotCheckedIn
		}

		// Место освобождается только если его держит это бронирование;
		// место, перевыданное принудительным освобождением, не трогаем
		if booking.SlotID != nil {
			slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, *booking.SlotID)
			if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("CheckOut: failed to get slot id=%d: %v", *booking.SlotID, err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			if slot != nil && slot.IsOccupiedBy(booking.ID) {
				if err := uc.slotRepo.Release(txCtx, slot.ID); err != nil {
					uc.logger.Error("CheckOut: failed to release slot id=%d: %v", slot.ID, err)
					return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
				}
			}
		}

		if err := uc.bookingRepo.SetCheckedOut(txCtx, booking.ID, req.UserID, now); err != nil {
			uc.logger.Error("CheckOut: failed to mark booking id=%d checked out: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to mark booking checked out: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := uc.buildBill(ctx, booking, now)
	if err != nil {
		return nil, err
	}

	result.PhotoAttachmentID = uc.capturePhoto(ctx, booking.ID, req.UserID, booking.CompanyID)

	uc.logger.Info("CheckOut: booking id=%d checked out, total=%.2f remaining=%.2f",
		booking.ID, result.TotalAmount, result.Remaining)
	return result, nil
}

// buildBill считает счёт по активному тарифу и проводкам бронирования
func (uc *UseCase) buildBill(ctx context.Context, booking *domain.Booking, checkoutAt time.Time) (*Response, error) {
	var rate *domain.CostRule
	rate, err := uc.costRuleRepo.GetActiveByCompany(ctx, booking.CompanyID)
	if err != nil {
		if !errors.Is(err, costruleRepo.ErrRuleNotFound) {
			uc.logger.Error("CheckOut: failed to get active cost rule for company=%d: %v", booking.CompanyID, err)
			return nil, fmt.Errorf("%w: failed to get cost rule: %v", ErrInternal, err)
		}
		rate = nil
	}

	lines, err := uc.ledgerRepo.ListLinesByBooking(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("CheckOut: failed to list ledger lines for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to list ledger lines: %v", ErrInternal, err)
	}

	total := domain.TotalAmount(booking.CheckinAt, &checkoutAt, rate)
	remaining := domain.RemainingAmount(total, lines)

	resp := &Response{
		BookingID:     booking.ID,
		State:         string(domain.StateCheckout),
		CheckoutAt:    checkoutAt,
		Hours:         domain.BillableHours(booking.CheckinAt, &checkoutAt),
		TotalAmount:   total,
		PaidAmount:    domain.PaidAmount(lines),
		Remaining:     remaining,
		PaymentStatus: string(domain.PaymentStatusFor(total, remaining, &checkoutAt)),
	}
	if rate != nil {
		resp.HourlyRate = rate.HourlyRate
	}
	return resp, nil
}

// capturePhoto делает снимок камерой выезда и пишет итог в ленту бронирования.
// Любая неудача логируется и не прерывает операцию.
func (uc *UseCase) capturePhoto(ctx context.Context, bookingID, userID, companyID int64) *int64 {
	cam, err := uc.cameraRepo.FindByRole(ctx, companyID, domain.CameraCheckout)
	if err != nil {
		if !errors.Is(err, cameraRepo.ErrCameraNotFound) {
			uc.logger.Error("CheckOut: failed to look up check-out camera for company=%d: %v", companyID, err)
		}
		return nil
	}

	image, err := uc.cameraClient.CaptureSnapshot(ctx, cam)
	if err != nil {
		uc.logger.Warn("CheckOut: snapshot failed for booking id=%d: %v", bookingID, err)
		uc.addNote(ctx, bookingID, userID, fmt.Sprintf("Check-out photo capture failed: camera %s unreachable", cam.Name))
		return nil
	}

	attachment, err := uc.attachmentRepo.Create(ctx, &domain.Attachment{
		Key:       uuid.NewString(),
		Name:      fmt.Sprintf("checkout_%d.jpg", bookingID),
		MimeType:  "image/jpeg",
		Content:   image,
		BookingID: &bookingID,
	})
	if err != nil {
		uc.logger.Error("CheckOut: failed to store snapshot for booking id=%d: %v", bookingID, err)
		return nil
	}

	uc.addNote(ctx, bookingID, userID, fmt.Sprintf("Check-out photo captured by camera %s", cam.Name))
	return &attachment.ID
}

func (uc *UseCase) addNote(ctx context.Context, bookingID, userID int64, body string) {
	note := &domain.BookingNote{
		BookingID: bookingID,
		Body:      body,
		CreatedBy: &userID,
	}
	if err := uc.bookingRepo.AddNote(ctx, note); err != nil {
		uc.logger.Error("CheckOut: failed to add note for booking id=%d: %v", bookingID, err)
	}
}
