package provision_queue

// Request запрос на provisioning очереди
type Request struct {
	QueueID int64
}

// Response результат provisioning
type Response struct {
	QueueID      int64
	State        string
	SlotsCreated int
	SlotCodes    []string
}
