package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// ListBoxesRequest запрос на получение списка касс.
// State фильтрует по состоянию, nil возвращает все.
type ListBoxesRequest struct {
	State *string `json:"state,omitempty"`
}

// Response модели

// LineResponse проводка кассы
type LineResponse struct {
	ID             int64     `json:"id"`
	PaymentFormID  int64     `json:"paymentFormId"`
	Amount         float64   `json:"amount"`
	Kind           string    `json:"kind"`
	DisplayName    string    `json:"displayName"`
	BookingID      *int64    `json:"bookingId,omitempty"`
	ReversedLineID *int64    `json:"reversedLineId,omitempty"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedBy      int64     `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BoxResponse ответ с данными кассы
type BoxResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	OwnerUserID   int64      `json:"ownerUserId"`
	OpeningAmount float64    `json:"openingAmount"`
	State         string     `json:"state"`
	Comment       *string    `json:"comment,omitempty"`
	ClosedBy      *int64     `json:"closedBy,omitempty"`
	CompanyID     int64      `json:"companyId"`
	OpenedAt      time.Time  `json:"openedAt"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`

	// ClosingValue производное: открытие плюс сумма проводок.
	// Заполняется только в детальном ответе.
	ClosingValue *float64       `json:"closingValue,omitempty"`
	Lines        []LineResponse `json:"lines,omitempty"`
}

// BoxListResponse ответ со списком касс
type BoxListResponse struct {
	Boxes []BoxResponse `json:"boxes"`
}

// Методы конвертации

// FromDomainBox конвертирует domain модель в DTO
func FromDomainBox(b *domain.RegisterBox) *BoxResponse {
	if b == nil {
		return nil
	}
	return &BoxResponse{
		ID:            b.ID,
		Name:          b.Name,
		OwnerUserID:   b.OwnerUserID,
		OpeningAmount: b.OpeningAmount,
		State:         string(b.State),
		Comment:       b.Comment,
		ClosedBy:      b.ClosedBy,
		CompanyID:     b.CompanyID,
		OpenedAt:      b.OpenedAt,
		ClosedAt:      b.ClosedAt,
	}
}

// FromDomainBoxList конвертирует список domain моделей в DTO
func FromDomainBoxList(boxes []*domain.RegisterBox) *BoxListResponse {
	items := make([]BoxResponse, 0, len(boxes))
	for _, b := range boxes {
		items = append(items, *FromDomainBox(b))
	}
	return &BoxListResponse{Boxes: items}
}

// FromDomainLines конвертирует проводки в DTO, подставляя имена форм оплаты
func FromDomainLines(lines []*domain.RegisterLine, formNames map[int64]string) []LineResponse {
	views := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		views = append(views, LineResponse{
			ID:             l.ID,
			PaymentFormID:  l.PaymentFormID,
			Amount:         l.Amount,
			Kind:           string(l.Kind),
			DisplayName:    l.DisplayName(formNames[l.PaymentFormID]),
			BookingID:      l.BookingID,
			ReversedLineID: l.ReversedLineID,
			Comment:        l.Comment,
			CreatedBy:      l.CreatedBy,
			CreatedAt:      l.CreatedAt,
		})
	}
	return views
}
