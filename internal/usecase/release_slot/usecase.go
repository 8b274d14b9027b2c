package release_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// UseCase use case принудительного освобождения места оператором.
// Машина при этом не выезжает: бронирование остаётся зачекиненным,
// в его ленту пишется заметка об освобождении.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepository SlotRepository,
	bookingRepository BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepository,
		bookingRepo: bookingRepository,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case освобождения места
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseSlot: slot=%d, user=%d", req.SlotID, req.UserID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ReleaseSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ReleaseSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if slot.IsFree() {
			uc.logger.Warn("ReleaseSlot: slot id=%d is already free", req.SlotID)
			return ErrSlotAlreadyFree
		}

		releasedBookingID := slot.BookingID

		if err := uc.slotRepo.Release(txCtx, slot.ID); err != nil {
			uc.logger.Error("ReleaseSlot: failed to release slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		if releasedBookingID != nil {
			note := &domain.BookingNote{
				BookingID: *releasedBookingID,
				Body:      fmt.Sprintf("Slot %s force-released by operator", slot.Code),
				CreatedBy: &req.UserID,
			}
			if err := uc.bookingRepo.AddNote(txCtx, note); err != nil {
				uc.logger.Error("ReleaseSlot: failed to add note for booking id=%d: %v", *releasedBookingID, err)
				return fmt.Errorf("%w: failed to add note: %v", ErrInternal, err)
			}
		}

		result = &Response{
			SlotID:            slot.ID,
			Code:              slot.Code,
			State:             string(domain.SlotFree),
			ReleasedBookingID: releasedBookingID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReleaseSlot: slot id=%d released", req.SlotID)
	return result, nil
}
