package camera

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/icholy/digest"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// isapiSnapshotPath путь снимка ISAPI (Hikvision-совместимые камеры)
const isapiSnapshotPath = "/ISAPI/Streaming/channels/1/picture"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент снимков камер. Запрос ограничен коротким фиксированным
// таймаутом и никогда не выполняется внутри открытой транзакции БД.
type Client struct {
	timeout time.Duration
	log     Logger
}

// NewClient создает новый клиент камер
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{timeout: timeout, log: log}
}

// CaptureSnapshot запрашивает JPEG-снимок с камеры.
// При наличии логина и пароля используется HTTP Digest аутентификация.
// Любой статус кроме 200 и любая сетевая ошибка возвращаются как
// восстановимая ErrCaptureFailed.
func (c *Client) CaptureSnapshot(ctx context.Context, cam *domain.Camera) ([]byte, error) {
	if cam.IPAddress == "" {
		return nil, ErrNoAddress
	}

	url := fmt.Sprintf("http://%s:%s%s", cam.IPAddress, cam.Port, isapiSnapshotPath)

	httpClient := &http.Client{Timeout: c.timeout}
	if cam.Username != nil && cam.Password != nil && *cam.Username != "" {
		httpClient.Transport = &digest.Transport{
			Username: *cam.Username,
			Password: *cam.Password,
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		c.log.Warn("CaptureSnapshot: camera %s (%s) unreachable: %v", cam.Name, cam.IPAddress, err)
		return nil, fmt.Errorf("%w: camera=%s: %v", ErrCaptureFailed, cam.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("CaptureSnapshot: camera %s (%s) returned status %d", cam.Name, cam.IPAddress, resp.StatusCode)
		return nil, fmt.Errorf("%w: camera=%s status=%d", ErrCaptureFailed, cam.Name, resp.StatusCode)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: camera=%s: read body: %v", ErrCaptureFailed, cam.Name, err)
	}

	c.log.Info("CaptureSnapshot: captured %d bytes from camera %s", len(image), cam.Name)
	return image, nil
}
