package create_camera

import "errors"

var (
	// ErrEmptyName возвращается, когда не указано имя камеры
	ErrEmptyName = errors.New("camera name is required")

	// ErrEmptyAddress возвращается, когда не указан IP-адрес
	ErrEmptyAddress = errors.New("camera ip address is required")

	// ErrInvalidRole возвращается при неизвестной роли камеры
	ErrInvalidRole = errors.New("camera role must be checkin or checkout")

	// ErrCameraLimitReached возвращается, когда у двора уже две камеры
	ErrCameraLimitReached = errors.New("yard already has the maximum number of cameras")

	// ErrRoleTaken возвращается, когда роль уже закреплена за другой камерой
	ErrRoleTaken = errors.New("yard already has a camera for this role")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
