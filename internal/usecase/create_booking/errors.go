package create_booking

import "errors"

var (
	// ErrTractorPlateRequired возвращается, когда не указан номер тягача
	ErrTractorPlateRequired = errors.New("tractor plate is required")

	// ErrInvalidPlate возвращается при номере, не подходящем ни под один формат
	ErrInvalidPlate = errors.New("invalid licence plate")

	// ErrInvalidState возвращается при недопустимом начальном состоянии
	ErrInvalidState = errors.New("initial state must be provisional or scheduled")

	// ErrInvalidDateRange возвращается, когда ожидаемый выезд раньше въезда
	ErrInvalidDateRange = errors.New("end date must not precede start date")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
