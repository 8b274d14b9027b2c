package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name          *string `json:"name,omitempty"`
	TractorPlate  string  `json:"tractorPlate"`
	TrailerPlate1 *string `json:"trailerPlate1,omitempty"`
	TrailerPlate2 *string `json:"trailerPlate2,omitempty"`
	TrailerPlate3 *string `json:"trailerPlate3,omitempty"`

	ClientID int64  `json:"clientId"`
	QueueID  *int64 `json:"queueId,omitempty"`

	State     string     `json:"state,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Operation          *string  `json:"operation,omitempty"`
	Product            *string  `json:"product,omitempty"`
	CargoPackaging     *string  `json:"cargoPackaging,omitempty"`
	BookingCargoWeight *float64 `json:"bookingCargoWeight,omitempty"`
	PlantCode          *string  `json:"plantCode,omitempty"`
	ParkingLotCode     *string  `json:"parkingLotCode,omitempty"`
	CargoClientName    *string  `json:"cargoClientName,omitempty"`
	CargoClientCNPJ    *string  `json:"cargoClientCnpj,omitempty"`
	CarrierName        *string  `json:"carrierName,omitempty"`
	CarrierCNPJ        *string  `json:"carrierCnpj,omitempty"`
	DriverName         *string  `json:"driverName,omitempty"`
	DriverCPF          *string  `json:"driverCpf,omitempty"`
	DriverMobile       *string  `json:"driverMobile,omitempty"`
	Observation        *string  `json:"observation,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64      `json:"id"`
	Name         *string    `json:"name,omitempty"`
	TractorPlate string     `json:"tractorPlate"`
	ClientID     int64      `json:"clientId"`
	QueueID      *int64     `json:"queueId,omitempty"`
	CompanyID    int64      `json:"companyId"`
	State        string     `json:"state"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	CreatedAt    string     `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(companyID int64) *createBooking.Request {
	return &createBooking.Request{
		Name:          r.Name,
		TractorPlate:  r.TractorPlate,
		TrailerPlate1: r.TrailerPlate1,
		TrailerPlate2: r.TrailerPlate2,
		TrailerPlate3: r.TrailerPlate3,
		ClientID:      r.ClientID,
		QueueID:       r.QueueID,
		CompanyID:     companyID,
		State:         r.State,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,

		Operation:          r.Operation,
		Product:            r.Product,
		CargoPackaging:     r.CargoPackaging,
		BookingCargoWeight: r.BookingCargoWeight,
		PlantCode:          r.PlantCode,
		ParkingLotCode:     r.ParkingLotCode,
		CargoClientName:    r.CargoClientName,
		CargoClientCNPJ:    r.CargoClientCNPJ,
		CarrierName:        r.CarrierName,
		CarrierCNPJ:        r.CarrierCNPJ,
		DriverName:         r.DriverName,
		DriverCPF:          r.DriverCPF,
		DriverMobile:       r.DriverMobile,
		Observation:        r.Observation,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		TractorPlate: resp.TractorPlate,
		ClientID:     resp.ClientID,
		QueueID:      resp.QueueID,
		CompanyID:    resp.CompanyID,
		State:        resp.State,
		StartDate:    resp.StartDate,
		EndDate:      resp.EndDate,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
