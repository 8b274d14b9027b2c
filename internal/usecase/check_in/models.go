package check_in

import "time"

// Request запрос на check-in
type Request struct {
	BookingID int64
	SlotID    int64
	UserID    int64
}

// Response результат check-in
type Response struct {
	BookingID int64
	SlotID    int64
	SlotCode  string
	QueueID   *int64
	State     string
	CheckinAt time.Time

	// PhotoAttachmentID снимок камеры въезда, nil если камера не настроена
	// или снимок не удался
	PhotoAttachmentID *int64
}
