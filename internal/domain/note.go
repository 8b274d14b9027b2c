package domain

import "time"

// BookingNote is one entry in a booking's append-only activity feed.
// Camera capture results and forced slot releases are recorded here.
type BookingNote struct {
	ID        int64
	BookingID int64
	Body      string
	CreatedBy *int64 // nil for system-generated notes
	CreatedAt time.Time
}

// Attachment is a stored binary blob (captured JPEG) linked to a booking
// or a camera test capture.
type Attachment struct {
	ID        int64
	Key       string // object key, uuid-based
	Name      string
	MimeType  string
	Content   []byte
	BookingID *int64
	CreatedAt time.Time
}
