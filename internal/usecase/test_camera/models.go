package test_camera

import "time"

// Request запрос на тестовый снимок
type Request struct {
	CameraID int64
}

// Response результат тестового снимка
type Response struct {
	CameraID     int64
	AttachmentID int64
	SizeBytes    int
	CapturedAt   time.Time
}
