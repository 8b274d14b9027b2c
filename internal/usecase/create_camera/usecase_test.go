package create_camera

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCameraRepo struct {
	cameras []*domain.Camera
	created *domain.Camera
}

func (f *fakeCameraRepo) ListByCompany(_ context.Context, _ int64) ([]*domain.Camera, error) {
	return f.cameras, nil
}

func (f *fakeCameraRepo) Create(_ context.Context, camera *domain.Camera) (*domain.Camera, error) {
	camera.ID = 1
	f.created = camera
	return camera, nil
}

func TestCreateCamera(t *testing.T) {
	cameras := &fakeCameraRepo{}

	uc := NewUseCase(cameras, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		Name:      " gate-in ",
		IPAddress: "10.0.0.20",
		Role:      string(domain.CameraCheckin),
		CompanyID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "gate-in", resp.Name)
	// порт по умолчанию, если не задан
	assert.Equal(t, "80", resp.Port)
	assert.Equal(t, string(domain.CameraCheckin), resp.Role)

	require.NotNil(t, cameras.created)
	assert.True(t, cameras.created.Active)
}

func TestCreateCameraExplicitPort(t *testing.T) {
	cameras := &fakeCameraRepo{}

	uc := NewUseCase(cameras, fakeTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		Name:      "gate-out",
		IPAddress: "10.0.0.21",
		Port:      "8000",
		Role:      string(domain.CameraCheckout),
		CompanyID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "8000", resp.Port)
}

func TestCreateCameraValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"empty name", &Request{Name: " ", IPAddress: "10.0.0.20", Role: "checkin"}, ErrEmptyName},
		{"empty address", &Request{Name: "gate-in", IPAddress: "", Role: "checkin"}, ErrEmptyAddress},
		{"unknown role", &Request{Name: "gate-in", IPAddress: "10.0.0.20", Role: "overview"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeCameraRepo{}, fakeTxManager{}, nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateCameraRoleTaken(t *testing.T) {
	cameras := &fakeCameraRepo{cameras: []*domain.Camera{
		{ID: 1, Role: domain.CameraCheckin},
	}}

	uc := NewUseCase(cameras, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		Name:      "gate-in-2",
		IPAddress: "10.0.0.22",
		Role:      string(domain.CameraCheckin),
		CompanyID: 2,
	})
	assert.ErrorIs(t, err, ErrRoleTaken)
}

func TestCreateCameraLimitReached(t *testing.T) {
	cameras := &fakeCameraRepo{cameras: []*domain.Camera{
		{ID: 1, Role: domain.CameraCheckin},
		{ID: 2, Role: domain.CameraCheckout},
	}}

	uc := NewUseCase(cameras, fakeTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		Name:      "gate-in-2",
		IPAddress: "10.0.0.22",
		Role:      string(domain.CameraCheckin),
		CompanyID: 2,
	})
	assert.ErrorIs(t, err, ErrCameraLimitReached)
}
