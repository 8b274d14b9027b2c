package register_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
	paymentformRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentform"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
)

// UseCase use case регистрации оплаты по бронированию.
// Оплата возможна только после выезда, только в открытую кассу оператора
// и не больше остатка. Остаток пересчитывается внутри транзакции, так что
// две параллельные оплаты не уведут его в минус.
type UseCase struct {
	bookingRepo  BookingRepository
	boxRepo      BoxRepository
	costRuleRepo CostRuleRepository
	formRepo     PaymentFormRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	boxRepository BoxRepository,
	costRuleRepository CostRuleRepository,
	formRepo PaymentFormRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		boxRepo:      boxRepository,
		costRuleRepo: costRuleRepository,
		formRepo:     formRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterPayment: booking=%d, user=%d, amount=%.2f",
		req.BookingID, req.UserID, req.Amount)

	if req.Amount <= 0 {
		uc.logger.Warn("RegisterPayment: invalid amount=%.2f", req.Amount)
		return nil, ErrInvalidAmount
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RegisterPayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RegisterPayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.CheckoutAt == nil {
			uc.logger.Warn("RegisterPayment: booking id=%d is not checked out", booking.ID)
			return ErrNotCheckedOut
		}

		box, err := uc.boxRepo.FindOpenByOwner(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, boxRepo.ErrBoxNotFound) {
				uc.logger.Warn("RegisterPayment: user=%d has no open box", req.UserID)
				return ErrNoOpenBox
			}
			uc.logger.Error("RegisterPayment: failed to look up open box for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to look up open box: %v", ErrInternal, err)
		}

		if _, err := uc.formRepo.GetByID(txCtx, req.PaymentFormID); err != nil {
			if errors.Is(err, paymentformRepo.ErrPaymentFormNotFound) {
				uc.logger.Warn("RegisterPayment: payment form id=%d not found", req.PaymentFormID)
				return ErrPaymentFormNotFound
			}
			uc.logger.Error("RegisterPayment: failed to get payment form id=%d: %v", req.PaymentFormID, err)
			return fmt.Errorf("%w: failed to get payment form: %v", ErrInternal, err)
		}

		rate, err := uc.costRuleRepo.GetActiveByCompany(txCtx, booking.CompanyID)
		if err != nil {
			if !errors.Is(err, costruleRepo.ErrRuleNotFound) {
				uc.logger.Error("RegisterPayment: failed to get cost rule for company=%d: %v", booking.CompanyID, err)
				return fmt.Errorf("%w: failed to get cost rule: %v", ErrInternal, err)
			}
			rate = nil
		}

		lines, err := uc.boxRepo.ListLinesByBooking(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("RegisterPayment: failed to list lines for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to list lines: %v", ErrInternal, err)
		}

		total := domain.TotalAmount(booking.CheckinAt, booking.CheckoutAt, rate)
		remaining := domain.RemainingAmount(total, lines)

		if remaining <= 0 {
			uc.logger.Warn("RegisterPayment: booking id=%d has nothing to pay, remaining=%.2f", booking.ID, remaining)
			return ErrAlreadyPaid
		}
		if req.Amount > remaining {
			uc.logger.Warn("RegisterPayment: amount=%.2f exceeds remaining=%.2f for booking id=%d",
				req.Amount, remaining, booking.ID)
			return ErrAmountExceedsRemaining
		}

		line, err := uc.boxRepo.CreateLine(txCtx, &domain.RegisterLine{
			BoxID:         box.ID,
			PaymentFormID: req.PaymentFormID,
			Amount:        req.Amount,
			Kind:          domain.LinePayment,
			BookingID:     &booking.ID,
			Comment:       req.Comment,
			CompanyID:     box.CompanyID,
			CreatedBy:     req.UserID,
		})
		if err != nil {
			uc.logger.Error("RegisterPayment: failed to create payment line for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to create payment line: %v", ErrInternal, err)
		}

		remainingAfter := remaining - req.Amount
		result = &Response{
			LineID:        line.ID,
			BoxID:         box.ID,
			BookingID:     booking.ID,
			Amount:        line.Amount,
			TotalAmount:   total,
			Remaining:     remainingAfter,
			PaymentStatus: string(domain.PaymentStatusFor(total, remainingAfter, booking.CheckoutAt)),
			CreatedAt:     line.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterPayment: line id=%d created for booking id=%d, remaining=%.2f",
		result.LineID, result.BookingID, result.Remaining)
	return result, nil
}
