package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest проверяет вход до обращения к хранилищу
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TractorPlate) == "" {
		return ErrTractorPlateRequired
	}
	if req.State != "" &&
		req.State != string(domain.StateProvisional) &&
		req.State != string(domain.StateScheduled) {
		return ErrInvalidState
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// validatePlates проверяет формат всех номеров уже нормализованного бронирования
func validatePlates(b *domain.Booking) error {
	if err := domain.ValidatePlates(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlate, err)
	}
	return nil
}
