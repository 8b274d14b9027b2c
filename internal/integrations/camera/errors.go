package camera

import "errors"

var (
	// ErrCaptureFailed возвращается, когда камера ответила не-200 статусом
	// или запрос завершился ошибкой. Ошибка восстановимая: вызывающий код
	// логирует её в ленту бронирования и продолжает переход.
	ErrCaptureFailed = errors.New("camera client: capture failed")

	// ErrNoAddress возвращается, когда у камеры не задан IP-адрес
	ErrNoAddress = errors.New("camera client: camera has no IP address")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("camera client: internal error")
)
