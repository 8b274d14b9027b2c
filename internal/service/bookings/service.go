package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// Service сервис для чтения и редактирования бронирований.
// Переходы жизненного цикла (check-in, check-out) живут в usecase-слое,
// здесь только чтение, правки полей и простые guard-переходы.
type Service struct {
	bookingRepo  BookingRepository
	ledgerRepo   LedgerRepository
	costRuleRepo CostRuleRepository
	formRepo     PaymentFormRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	ledgerRepo LedgerRepository,
	costRuleRepo CostRuleRepository,
	formRepo PaymentFormRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		ledgerRepo:   ledgerRepo,
		costRuleRepo: costRuleRepo,
		formRepo:     formRepo,
		logger:       logger,
	}
}

// GetByID собирает агрегированное представление бронирования: поля,
// проводки кассы, расчёт оплаты и лента заметок. Сумма и остаток
// считаются на лету, в БД они не хранятся.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.ListLinesByBooking(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list ledger lines for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list lines: %v", ErrInternal, err)
	}

	rate, err := s.activeRate(ctx, booking.CompanyID)
	if err != nil {
		return nil, err
	}

	notes, err := s.bookingRepo.ListNotes(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list notes for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list notes: %v", ErrInternal, err)
	}

	formNames, err := s.formNames(ctx, lines)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainBooking(booking)
	resp.Billing = buildBilling(booking, lines, rate)
	resp.Lines = models.FromDomainLines(lines, formNames)
	resp.Notes = models.FromDomainNotes(notes)
	return resp, nil
}

// List получает бронирования клиента, по умолчанию без архивных
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for client=%d, includeInactive=%v", req.ClientID, req.IncludeInactive)

	bookings, err := s.bookingRepo.ListByClient(ctx, req.ClientID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("List: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование.
// У зачекиненного бронирования место снять нельзя, архивировать его тоже нельзя.
// Все номера проходят проверку формата после нормализации.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClearSlot && booking.IsCheckedIn() {
		s.logger.Warn("Update: booking id=%d is checked in, slot cannot be cleared", id)
		return nil, ErrSlotRequired
	}
	if req.Active != nil && !*req.Active && !booking.CanBeArchived() {
		s.logger.Warn("Update: booking id=%d is checked in, cannot archive", id)
		return nil, ErrCannotArchive
	}

	applyUpdate(booking, req)

	if err := domain.ValidatePlates(booking); err != nil {
		s.logger.Warn("Update: plate validation failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlate, err)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование. Отмена запрещена, пока машина во дворе,
// и невозможна повторно.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, state=%s", id, booking.State)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.SetState(ctx, id, domain.StateCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// Delete удаляет бронирование. Удаление зачекиненного бронирования запрещено.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("Delete: booking id=%d is checked in, cannot delete", id)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// activeRate возвращает действующий тариф двора, nil если тариф не настроен
func (s *Service) activeRate(ctx context.Context, companyID int64) (*domain.CostRule, error) {
	rate, err := s.costRuleRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, costruleRepo.ErrRuleNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get active cost rule for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: get active cost rule: %v", ErrInternal, err)
	}
	return rate, nil
}

func (s *Service) formNames(ctx context.Context, lines []*domain.RegisterLine) (map[int64]string, error) {
	ids := make([]int64, 0, len(lines))
	seen := map[int64]bool{}
	for _, l := range lines {
		if !seen[l.PaymentFormID] {
			seen[l.PaymentFormID] = true
			ids = append(ids, l.PaymentFormID)
		}
	}
	names, err := s.formRepo.NamesByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to resolve payment form names: %v", err)
		return nil, fmt.Errorf("%w: resolve payment form names: %v", ErrInternal, err)
	}
	return names, nil
}

func buildBilling(b *domain.Booking, lines []*domain.RegisterLine, rate *domain.CostRule) *models.BillingView {
	total := domain.TotalAmount(b.CheckinAt, b.CheckoutAt, rate)
	remaining := domain.RemainingAmount(total, lines)
	view := &models.BillingView{
		Hours:         domain.BillableHours(b.CheckinAt, b.CheckoutAt),
		TotalAmount:   total,
		PaidAmount:    domain.PaidAmount(lines),
		Remaining:     remaining,
		PaymentStatus: string(domain.PaymentStatusFor(total, remaining, b.CheckoutAt)),
	}
	if rate != nil {
		view.HourlyRate = rate.HourlyRate
	}
	return view
}

func applyUpdate(b *domain.Booking, req *models.UpdateBookingRequest) {
	if req.Name != nil {
		b.Name = req.Name
	}
	if req.TractorPlate != nil {
		b.TractorPlate = domain.NormalizePlate(*req.TractorPlate)
	}
	if req.TrailerPlate1 != nil {
		b.TrailerPlate1 = normalizedPlatePtr(*req.TrailerPlate1)
	}
	if req.TrailerPlate2 != nil {
		b.TrailerPlate2 = normalizedPlatePtr(*req.TrailerPlate2)
	}
	if req.TrailerPlate3 != nil {
		b.TrailerPlate3 = normalizedPlatePtr(*req.TrailerPlate3)
	}
	if req.QueueID != nil {
		b.QueueID = req.QueueID
	}
	if req.StartDate != nil {
		b.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		b.EndDate = req.EndDate
	}
	if req.ClearSlot {
		b.SlotID = nil
	}
	if req.Active != nil {
		b.Active = *req.Active
	}
	if req.Operation != nil {
		b.Operation = req.Operation
	}
	if req.Product != nil {
		b.Product = req.Product
	}
	if req.CargoPackaging != nil {
		b.CargoPackaging = req.CargoPackaging
	}
	if req.BookingCargoWeight != nil {
		b.BookingCargoWeight = req.BookingCargoWeight
	}
	if req.PlantCode != nil {
		b.PlantCode = req.PlantCode
	}
	if req.ParkingLotCode != nil {
		b.ParkingLotCode = req.ParkingLotCode
	}
	if req.CargoClientName != nil {
		b.CargoClientName = req.CargoClientName
	}
	if req.CargoClientCNPJ != nil {
		b.CargoClientCNPJ = req.CargoClientCNPJ
	}
	if req.CarrierName != nil {
		b.CarrierName = req.CarrierName
	}
	if req.CarrierCNPJ != nil {
		b.CarrierCNPJ = req.CarrierCNPJ
	}
	if req.DriverName != nil {
		b.DriverName = req.DriverName
	}
	if req.DriverCPF != nil {
		b.DriverCPF = req.DriverCPF
	}
	if req.DriverMobile != nil {
		b.DriverMobile = req.DriverMobile
	}
	if req.Observation != nil {
		b.Observation = req.Observation
	}
}

// normalizedPlatePtr нормализует номер; пустая строка снимает значение
func normalizedPlatePtr(raw string) *string {
	normalized := domain.NormalizePlate(raw)
	if normalized == "" {
		return nil
	}
	return &normalized
}
