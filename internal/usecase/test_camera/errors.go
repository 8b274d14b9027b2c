package test_camera

import "errors"

var (
	// ErrCameraNotFound возвращается, когда камера не найдена
	ErrCameraNotFound = errors.New("camera not found")

	// ErrCaptureFailed возвращается, когда камера не ответила снимком
	ErrCaptureFailed = errors.New("camera capture failed")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
