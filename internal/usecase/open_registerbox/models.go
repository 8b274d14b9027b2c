package open_registerbox

import "time"

// Request запрос на открытие кассы
type Request struct {
	UserID        int64
	UserName      string
	CompanyID     int64
	OpeningAmount float64
	Comment       *string
}

// Response открытая касса
type Response struct {
	ID            int64
	Name          string
	OwnerUserID   int64
	OpeningAmount float64
	State         string
	CompanyID     int64
	OpenedAt      time.Time
}
