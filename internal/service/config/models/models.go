package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PaymentFormResponse форма оплаты
type PaymentFormResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// PaymentFormListResponse ответ со списком форм оплаты
type PaymentFormListResponse struct {
	PaymentForms []PaymentFormResponse `json:"paymentForms"`
}

// CameraResponse камера двора. Пароль наружу не отдаётся.
type CameraResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Model            *string `json:"model,omitempty"`
	IPAddress        string  `json:"ipAddress"`
	Port             string  `json:"port"`
	Username         *string `json:"username,omitempty"`
	Location         *string `json:"location,omitempty"`
	Role             string  `json:"role"`
	Active           bool    `json:"active"`
	LastAttachmentID *int64  `json:"lastAttachmentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CameraListResponse ответ со списком камер
type CameraListResponse struct {
	Cameras []CameraResponse `json:"cameras"`
}

// CostRuleResponse тариф двора
type CostRuleResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
	Active     bool    `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
}

// CostRuleListResponse ответ со списком тарифов
type CostRuleListResponse struct {
	CostRules []CostRuleResponse `json:"costRules"`
}

// Методы конвертации

// FromDomainPaymentForms конвертирует формы оплаты в DTO
func FromDomainPaymentForms(forms []*domain.PaymentForm) *PaymentFormListResponse {
	items := make([]PaymentFormResponse, 0, len(forms))
	for _, f := range forms {
		items = append(items, PaymentFormResponse{ID: f.ID, Name: f.Name, Active: f.Active})
	}
	return &PaymentFormListResponse{PaymentForms: items}
}

// FromDomainCamera конвертирует камеру в DTO
func FromDomainCamera(c *domain.Camera) *CameraResponse {
	if c == nil {
		return nil
	}
	return &CameraResponse{
		ID:               c.ID,
		Name:             c.Name,
		Model:            c.Model,
		IPAddress:        c.IPAddress,
		Port:             c.Port,
		Username:         c.Username,
		Location:         c.Location,
		Role:             string(c.Role),
		Active:           c.Active,
		LastAttachmentID: c.LastAttachmentID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// FromDomainCameras конвертирует список камер в DTO
func FromDomainCameras(cameras []*domain.Camera) *CameraListResponse {
	items := make([]CameraResponse, 0, len(cameras))
	for _, c := range cameras {
		items = append(items, *FromDomainCamera(c))
	}
	return &CameraListResponse{Cameras: items}
}

// FromDomainCostRules конвертирует тарифы в DTO
func FromDomainCostRules(rules []*domain.CostRule) *CostRuleListResponse {
	items := make([]CostRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, CostRuleResponse{
			ID:         r.ID,
			Name:       r.Name,
			HourlyRate: r.HourlyRate,
			Active:     r.Active,
			CreatedAt:  r.CreatedAt,
		})
	}
	return &CostRuleListResponse{CostRules: items}
}
