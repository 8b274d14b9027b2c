package check_out

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	SetCheckedOut(ctx context.Context, id int64, userID int64, at time.Time) error
	AddNote(ctx context.Context, note *domain.BookingNote) error
}

// SlotRepository интерфейс репозитория мест
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	Release(ctx context.Context, slotID int64) error
}

// CostRuleRepository интерфейс репозитория тарифов
type CostRuleRepository interface {
	GetActiveByCompany(ctx context.Context, companyID int64) (*domain.CostRule, error)
}

// LedgerRepository интерфейс репозитория проводок кассы
type LedgerRepository interface {
	ListLinesByBooking(ctx context.Context, bookingID int64) ([]*domain.RegisterLine, error)
}

// CameraRepository интерфейс репозитория камер
type CameraRepository interface {
	FindByRole(ctx context.Context, companyID int64, role domain.CameraRole) (*domain.Camera, error)
}

// AttachmentRepository интерфейс репозитория вложений
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) (*domain.Attachment, error)
}

// CameraClient интерфейс клиента снимков камер
type CameraClient interface {
	CaptureSnapshot(ctx context.Context, camera *domain.Camera) ([]byte, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
