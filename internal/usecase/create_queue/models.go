package create_queue

import "time"

// Request запрос на создание очереди
type Request struct {
	Name             string
	Description      *string
	ClientID         int64
	ContractCapacity int
	InitialSlot      int
	CompanyID        int64
}

// Response созданная очередь
type Response struct {
	ID               int64
	Name             string
	Description      *string
	ClientID         int64
	ContractCapacity int
	InitialSlot      int
	CompanyID        int64
	State            string
	CreatedAt        time.Time
}
