package config

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/service/config/models"
)

// Service сервис чтения настроек двора: формы оплаты, камеры, тарифы
type Service struct {
	formRepo     PaymentFormRepository
	cameraRepo   CameraRepository
	costRuleRepo CostRuleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	formRepo PaymentFormRepository,
	cameraRepo CameraRepository,
	costRuleRepo CostRuleRepository,
	logger Logger,
) *Service {
	return &Service{
		formRepo:     formRepo,
		cameraRepo:   cameraRepo,
		costRuleRepo: costRuleRepo,
		logger:       logger,
	}
}

// ListPaymentForms получает активные формы оплаты двора
func (s *Service) ListPaymentForms(ctx context.Context, companyID int64) (*models.PaymentFormListResponse, error) {
	forms, err := s.formRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("ListPaymentForms: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListPaymentForms - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPaymentForms(forms), nil
}

// ListCameras получает активные камеры двора
func (s *Service) ListCameras(ctx context.Context, companyID int64) (*models.CameraListResponse, error) {
	cameras, err := s.cameraRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("ListCameras: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListCameras - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCameras(cameras), nil
}

// ListCostRules получает тарифы двора, включая неактивные
func (s *Service) ListCostRules(ctx context.Context, companyID int64) (*models.CostRuleListResponse, error) {
	rules, err := s.costRuleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("ListCostRules: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListCostRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCostRules(rules), nil
}
