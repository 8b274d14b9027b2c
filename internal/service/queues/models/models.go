package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Response модели

// SlotResponse место очереди
type SlotResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	State     string `json:"state"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Active    bool   `json:"active"`
}

// QueueResponse ответ с данными очереди
type QueueResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	ClientID         int64   `json:"clientId"`
	ContractCapacity int     `json:"contractCapacity"`
	InitialSlot      int     `json:"initialSlot"`
	CompanyID        int64   `json:"companyId"`
	State            string  `json:"state"`
	Active           bool    `json:"active"`

	Slots []SlotResponse `json:"slots,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QueueListResponse ответ со списком очередей
type QueueListResponse struct {
	Queues []QueueResponse `json:"queues"`
}

// Методы конвертации

// FromDomainQueue конвертирует domain модель в DTO
func FromDomainQueue(q *domain.Queue) *QueueResponse {
	if q == nil {
		return nil
	}
	return &QueueResponse{
		ID:               q.ID,
		Name:             q.Name,
		Description:      q.Description,
		ClientID:         q.ClientID,
		ContractCapacity: q.ContractCapacity,
		InitialSlot:      q.InitialSlot,
		CompanyID:        q.CompanyID,
		State:            string(q.State),
		Active:           q.Active,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

// FromDomainSlots конвертирует места в DTO
func FromDomainSlots(slots []*domain.Slot) []SlotResponse {
	views := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotResponse{
			ID:        s.ID,
			Code:      s.Code,
			State:     string(s.State),
			BookingID: s.BookingID,
			Active:    s.Active,
		})
	}
	return views
}
