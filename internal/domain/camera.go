package domain

import "time"

// CameraRole is the lifecycle transition a camera documents
type CameraRole string

const (
	CameraCheckin  CameraRole = "checkin"
	CameraCheckout CameraRole = "checkout"
)

// Camera is a registered yard camera. A yard may have at most
// MaxCamerasPerYard active cameras, at most one per role.
type Camera struct {
	ID        int64
	Name      string
	Model     *string
	IPAddress string
	Port      string
	Username  *string
	Password  *string
	Location  *string
	Role      CameraRole
	CompanyID int64
	Active    bool

	// LastAttachmentID last test-capture attachment
	LastAttachmentID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
