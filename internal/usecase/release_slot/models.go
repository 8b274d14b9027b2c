package release_slot

// Request запрос на принудительное освобождение места
type Request struct {
	SlotID int64
	UserID int64
}

// Response результат освобождения
type Response struct {
	SlotID int64
	Code   string
	State  string

	// ReleasedBookingID бронирование, державшее место
	ReleasedBookingID *int64
}
