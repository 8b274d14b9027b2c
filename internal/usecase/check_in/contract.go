package check_in

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	SetCheckedIn(ctx context.Context, id int64, slotID int64, queueID *int64, companyID int64, userID int64, at time.Time) error
	AddNote(ctx context.Context, note *domain.BookingNote) error
}

// SlotRepository интерфейс репозитория мест
type SlotRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	Occupy(ctx context.Context, slotID, bookingID int64) error
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
