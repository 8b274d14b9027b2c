package create_camera

import "time"

// Request запрос на регистрацию камеры
type Request struct {
	Name      string
	Model     *string
	IPAddress string
	Port      string // пустое значение трактуется как "80"
	Username  *string
	Password  *string
	Location  *string
	Role      string
	CompanyID int64
}

// Response зарегистрированная камера
type Response struct {
	ID        int64
	Name      string
	IPAddress string
	Port      string
	Role      string
	CompanyID int64
	CreatedAt time.Time
}
