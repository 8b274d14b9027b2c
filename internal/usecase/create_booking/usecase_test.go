package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 1
	booking.CreatedAt = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	f.created = booking
	return booking, nil
}

func TestCreateBooking(t *testing.T) {
	trailer := " def5678 "
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(bookings, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		TractorPlate:  "abc1234",
		TrailerPlate1: &trailer,
		ClientID:      3,
		CompanyID:     2,
	})
	require.NoError(t, err)

	// номера нормализуются до сохранения
	assert.Equal(t, "ABC1234", resp.TractorPlate)
	assert.Equal(t, string(domain.StateProvisional), resp.State)

	require.NotNil(t, bookings.created)
	require.NotNil(t, bookings.created.TrailerPlate1)
	assert.Equal(t, "DEF5678", *bookings.created.TrailerPlate1)
	assert.True(t, bookings.created.Active)
}

func TestCreateBookingScheduled(t *testing.T) {
	start := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(bookings, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		TractorPlate: "ABC1D23",
		ClientID:     3,
		CompanyID:    2,
		State:        string(domain.StateScheduled),
		StartDate:    &start,
		EndDate:      &end,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateScheduled), resp.State)
}

func TestCreateBookingEmptyTrailerPlateDropped(t *testing.T) {
	empty := "  "
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(bookings, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		TractorPlate:  "ABC1234",
		TrailerPlate2: &empty,
		ClientID:      3,
	})
	require.NoError(t, err)
	assert.Nil(t, bookings.created.TrailerPlate2)
}

func TestCreateBookingValidation(t *testing.T) {
	start := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	earlier := start.Add(-time.Hour)
	badPlate := "NOPE"

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"missing tractor plate", &Request{TractorPlate: "  "}, ErrTractorPlateRequired},
		{"invalid tractor plate", &Request{TractorPlate: "1234ABC"}, ErrInvalidPlate},
		{"invalid trailer plate", &Request{TractorPlate: "ABC1234", TrailerPlate1: &badPlate}, ErrInvalidPlate},
		{"checkin is not a valid initial state", &Request{TractorPlate: "ABC1234", State: string(domain.StateCheckin)}, ErrInvalidState},
		{"end before start", &Request{TractorPlate: "ABC1234", StartDate: &start, EndDate: &earlier}, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			uc := NewUseCase(bookings, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, bookings.created)
		})
	}
}
