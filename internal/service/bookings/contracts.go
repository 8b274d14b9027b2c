package bookings

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	SetState(ctx context.Context, id int64, state domain.BookingState) error
	Delete(ctx context.Context, id int64) error
	ListByClient(ctx context.Context, clientID int64, includeInactive bool) ([]*domain.Booking, error)
	ListNotes(ctx context.Context, bookingID int64) ([]*domain.BookingNote, error)
}

// LedgerRepository интерфейс репозитория проводок кассы
type LedgerRepository interface {
	ListLinesByBooking(ctx context.Context, bookingID int64) ([]*domain.RegisterLine, error)
}

// CostRuleRepository интерфейс репозитория тарифов
type CostRuleRepository interface {
	GetActiveByCompany(ctx context.Context, companyID int64) (*domain.CostRule, error)
}

// PaymentFormRepository интерфейс репозитория форм оплаты
type PaymentFormRepository interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
