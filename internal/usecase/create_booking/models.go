package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	Name          *string
	TractorPlate  string
	TrailerPlate1 *string
	TrailerPlate2 *string
	TrailerPlate3 *string

	ClientID  int64
	QueueID   *int64
	CompanyID int64

	State     string // пустое значение трактуется как provisional
	StartDate *time.Time
	EndDate   *time.Time

	Operation          *string
	Product            *string
	CargoPackaging     *string
	BookingCargoWeight *float64
	PlantCode          *string
	ParkingLotCode     *string
	CargoClientName    *string
	CargoClientCNPJ    *string
	CarrierName        *string
	CarrierCNPJ        *string
	DriverName         *string
	DriverCPF          *string
	DriverMobile       *string
	Observation        *string
}

// Response созданное бронирование
type Response struct {
	ID           int64
	Name         *string
	TractorPlate string
	ClientID     int64
	QueueID      *int64
	CompanyID    int64
	State        string
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
}
