package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований клиента
type ListBookingsRequest struct {
	ClientID        int64 `json:"clientId"`
	IncludeInactive bool  `json:"includeInactive,omitempty"`
}

// UpdateBookingRequest запрос на частичное обновление бронирования.
// Nil-поля не трогаются. Состояние меняется только жизненным циклом
// (check-in, check-out, cancel), здесь его нет.
type UpdateBookingRequest struct {
	Name          *string `json:"name,omitempty"`
	TractorPlate  *string `json:"tractorPlate,omitempty"`
	TrailerPlate1 *string `json:"trailerPlate1,omitempty"`
	TrailerPlate2 *string `json:"trailerPlate2,omitempty"`
	TrailerPlate3 *string `json:"trailerPlate3,omitempty"`

	QueueID   *int64     `json:"queueId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	// ClearSlot снимает место. Запрещено для зачекиненного бронирования.
	ClearSlot bool  `json:"clearSlot,omitempty"`
	Active    *bool `json:"active,omitempty"`

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

// Response модели

// LedgerLineView проводка кассы, привязанная к бронированию
type LedgerLineView struct {
	ID          int64     `json:"id"`
	BoxID       int64     `json:"boxId"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NoteView запись ленты бронирования
type NoteView struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	CreatedBy *int64    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BillingView расчётный блок бронирования. Все значения производные,
// в БД не хранятся.
type BillingView struct {
	Hours         int     `json:"hours"`
	HourlyRate    float64 `json:"hourlyRate"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	Remaining     float64 `json:"remaining"`
	PaymentStatus string  `json:"paymentStatus"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID   int64   `json:"id"`
	Name *string `json:"name,omitempty"`

	TractorPlate  string  `json:"tractorPlate"`
	TrailerPlate1 *string `json:"trailerPlate1,omitempty"`
	TrailerPlate2 *string `json:"trailerPlate2,omitempty"`
	TrailerPlate3 *string `json:"trailerPlate3,omitempty"`

	ClientID  int64  `json:"clientId"`
	QueueID   *int64 `json:"queueId,omitempty"`
	SlotID    *int64 `json:"slotId,omitempty"`
	CompanyID int64  `json:"companyId"`

	State  string `json:"state"`
	Active bool   `json:"active"`

	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	CheckinAt  *time.Time `json:"checkinAt,omitempty"`
	CheckoutAt *time.Time `json:"checkoutAt,omitempty"`

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

	Billing *BillingView     `json:"billing,omitempty"`
	Lines   []LedgerLineView `json:"lines,omitempty"`
	Notes   []NoteView       `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO без расчётного блока
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:                 b.ID,
		Name:               b.Name,
		TractorPlate:       b.TractorPlate,
		TrailerPlate1:      b.TrailerPlate1,
		TrailerPlate2:      b.TrailerPlate2,
		TrailerPlate3:      b.TrailerPlate3,
		ClientID:           b.ClientID,
		QueueID:            b.QueueID,
		SlotID:             b.SlotID,
		CompanyID:          b.CompanyID,
		State:              string(b.State),
		Active:             b.Active,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		CheckinAt:          b.CheckinAt,
		CheckoutAt:         b.CheckoutAt,
		Operation:          b.Operation,
		Product:            b.Product,
		CargoPackaging:     b.CargoPackaging,
		BookingCargoWeight: b.BookingCargoWeight,
		PlantCode:          b.PlantCode,
		ParkingLotCode:     b.ParkingLotCode,
		CargoClientName:    b.CargoClientName,
		CargoClientCNPJ:    b.CargoClientCNPJ,
		CarrierName:        b.CarrierName,
		CarrierCNPJ:        b.CarrierCNPJ,
		DriverName:         b.DriverName,
		DriverCPF:          b.DriverCPF,
		DriverMobile:       b.DriverMobile,
		Observation:        b.Observation,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items}
}

// FromDomainNotes конвертирует записи ленты в DTO
func FromDomainNotes(notes []*domain.BookingNote) []NoteView {
	views := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, NoteView{
			ID:        n.ID,
			Body:      n.Body,
			CreatedBy: n.CreatedBy,
			CreatedAt: n.CreatedAt,
		})
	}
	return views
}

// FromDomainLines конвертирует проводки в DTO, подставляя имена форм оплаты
func FromDomainLines(lines []*domain.RegisterLine, formNames map[int64]string) []LedgerLineView {
	views := make([]LedgerLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, LedgerLineView{
			ID:          l.ID,
			BoxID:       l.BoxID,
			Kind:        string(l.Kind),
			Amount:      l.Amount,
			DisplayName: l.DisplayName(formNames[l.PaymentFormID]),
			CreatedAt:   l.CreatedAt,
		})
	}
	return views
}
