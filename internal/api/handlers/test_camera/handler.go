package test_camera

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	testCamera "github.com/m04kA/SMC-ParkingService/internal/usecase/test_camera"
)

const (
	msgInvalidCameraID = "некорректный идентификатор камеры"
	msgCameraNotFound  = "камера не найдена"
	msgCaptureFailed   = "камера недоступна, снимок не получен"
)

// TestCaptureResponse HTTP response model
type TestCaptureResponse struct {
	CameraID     int64     `json:"cameraId"`
	AttachmentID int64     `json:"attachmentId"`
	SizeBytes    int       `json:"sizeBytes"`
	CapturedAt   time.Time `json:"capturedAt"`
}

type Handler struct {
	useCase TestCameraUseCase
	logger  Logger
}

func NewHandler(useCase TestCameraUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cameras/{cameraId}/test
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cameraID, err := strconv.ParseInt(mux.Vars(r)["cameraId"], 10, 64)
	if err != nil || cameraID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCameraID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &testCamera.Request{CameraID: cameraID})
	if err != nil {
		switch {
		case errors.Is(err, testCamera.ErrCameraNotFound):
			handlers.RespondNotFound(w, msgCameraNotFound)
		case errors.Is(err, testCamera.ErrCaptureFailed):
			h.logger.Warn("POST /cameras/%d/test - Capture failed: %v", cameraID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCaptureFailed)
		default:
			h.logger.Error("POST /cameras/%d/test - Failed: error=%v", cameraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cameras/%d/test - Snapshot captured: attachment_id=%d, size=%d", cameraID, result.AttachmentID, result.SizeBytes)
	handlers.RespondJSON(w, http.StatusOK, &TestCaptureResponse{
		CameraID:     result.CameraID,
		AttachmentID: result.AttachmentID,
		SizeBytes:    result.SizeBytes,
		CapturedAt:   result.CapturedAt,
	})
}
