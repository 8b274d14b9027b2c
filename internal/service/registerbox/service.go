package registerbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	boxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
	"github.com/m04kA/SMC-ParkingService/internal/service/registerbox/models"
)

// Service сервис чтения касс. Оператор видит только собственные кассы,
// администратор и суперпользователь видят все кассы двора.
type Service struct {
	boxRepo  BoxRepository
	formRepo PaymentFormRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса касс
func NewService(boxRepo BoxRepository, formRepo PaymentFormRepository, logger Logger) *Service {
	return &Service{
		boxRepo:  boxRepo,
		formRepo: formRepo,
		logger:   logger,
	}
}

// List получает кассы двора с учётом роли запрашивающего
func (s *Service) List(ctx context.Context, identity *auth.Identity, req *models.ListBoxesRequest) (*models.BoxListResponse, error) {
	s.logger.Info("List: fetching boxes for user=%d, role=%s, company=%d",
		identity.UserID, identity.Role, identity.CompanyID)

	filter := boxRepo.BoxFilter{CompanyID: identity.CompanyID}
	if !identity.CanSeeAllBoxes() {
		owner := identity.UserID
		filter.OwnerUserID = &owner
	}
	if req.State != nil {
		state := domain.BoxState(*req.State)
		filter.State = &state
	}

	boxes, err := s.boxRepo.ListBoxes(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d boxes for user=%d", len(boxes), identity.UserID)
	return models.FromDomainBoxList(boxes), nil
}

// GetByID получает кассу с проводками и производным значением закрытия
func (s *Service) GetByID(ctx context.Context, identity *auth.Identity, boxID int64) (*models.BoxResponse, error) {
	s.logger.Info("GetByID: fetching box id=%d for user=%d", boxID, identity.UserID)

	box, err := s.boxRepo.GetBoxByID(ctx, boxID)
	if err != nil {
		if errors.Is(err, boxRepo.ErrBoxNotFound) {
			s.logger.Warn("GetByID: box id=%d not found", boxID)
			return nil, ErrBoxNotFound
		}
		s.logger.Error("GetByID: repository error for box id=%d: %v", boxID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !identity.CanSeeAllBoxes() && box.OwnerUserID != identity.UserID {
		s.logger.Warn("GetByID: access denied for user=%d to box id=%d", identity.UserID, boxID)
		return nil, ErrAccessDenied
	}

	lines, err := s.boxRepo.ListLinesByBox(ctx, boxID)
	if err != nil {
		s.logger.Error("GetByID: failed to list lines for box id=%d: %v", boxID, err)
		return nil, fmt.Errorf("%w: GetByID - list lines: %v", ErrInternal, err)
	}

	formNames, err := s.formNames(ctx, lines)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainBox(box)
	closing := box.ClosingValue(lines)
	resp.ClosingValue = &closing
	resp.Lines = models.FromDomainLines(lines, formNames)
	return resp, nil
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
