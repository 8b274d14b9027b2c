package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case создания бронирования.
// Бронирование создаётся без места; место выделяется только при check-in.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, company=%d, plate=%s",
		req.ClientID, req.CompanyID, req.TractorPlate)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	state := domain.StateProvisional
	if req.State != "" {
		state = domain.BookingState(req.State)
	}

	booking := &domain.Booking{
		Name:          req.Name,
		TractorPlate:  domain.NormalizePlate(req.TractorPlate),
		TrailerPlate1: normalizePlatePtr(req.TrailerPlate1),
		TrailerPlate2: normalizePlatePtr(req.TrailerPlate2),
		TrailerPlate3: normalizePlatePtr(req.TrailerPlate3),
		ClientID:      req.ClientID,
		QueueID:       req.QueueID,
		CompanyID:     req.CompanyID,
		State:         state,
		Active:        true,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,

		Operation:          req.Operation,
		Product:            req.Product,
		CargoPackaging:     req.CargoPackaging,
		BookingCargoWeight: req.BookingCargoWeight,
		PlantCode:          req.PlantCode,
		ParkingLotCode:     req.ParkingLotCode,
		CargoClientName:    req.CargoClientName,
		CargoClientCNPJ:    req.CargoClientCNPJ,
		CarrierName:        req.CarrierName,
		CarrierCNPJ:        req.CarrierCNPJ,
		DriverName:         req.DriverName,
		DriverCPF:          req.DriverCPF,
		DriverMobile:       req.DriverMobile,
		Observation:        req.Observation,
	}

	if err := validatePlates(booking); err != nil {
		uc.logger.Warn("CreateBooking: plate validation failed: %v", err)
		return nil, err
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)
	return &Response{
		ID:           created.ID,
		Name:         created.Name,
		TractorPlate: created.TractorPlate,
		ClientID:     created.ClientID,
		QueueID:      created.QueueID,
		CompanyID:    created.CompanyID,
		State:        string(created.State),
		StartDate:    created.StartDate,
		EndDate:      created.EndDate,
		CreatedAt:    created.CreatedAt,
	}, nil
}

// normalizePlatePtr нормализует опциональный номер, пустое значение отбрасывается
func normalizePlatePtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	normalized := domain.NormalizePlate(*raw)
	if normalized == "" {
		return nil
	}
	return &normalized
}
