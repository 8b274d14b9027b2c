package domain

import "time"

// QueueState represents the provisioning state of a queue
type QueueState string

const (
	QueueProvisional QueueState = "provisional"
	QueueActive      QueueState = "active"
)

// Queue represents a capacity-bounded pool of slots contracted to one client.
// Once active, capacity and initial slot number are immutable.
type Queue struct {
	ID               int64
	Name             string
	Description      *string
	ClientID         int64
	ContractCapacity int // contracted number of slots
	InitialSlot      int // starting slot number for provisioning
	CompanyID        int64
	State            QueueState
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanProvision returns true if the queue is eligible for slot provisioning
func (q *Queue) CanProvision() bool {
	return q.State == QueueProvisional && q.ContractCapacity > 1 && q.InitialSlot > 0
}
