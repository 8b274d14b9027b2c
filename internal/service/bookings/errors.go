package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается при попытке отменить бронирование с машиной во дворе
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotArchive возвращается при попытке архивировать бронирование с машиной во дворе
	ErrCannotArchive = errors.New("booking cannot be archived while checked in")

	// ErrCannotDelete возвращается при попытке удалить бронирование с машиной во дворе
	ErrCannotDelete = errors.New("booking cannot be deleted while checked in")

	// ErrSlotRequired возвращается, когда у зачекиненного бронирования пытаются снять место
	ErrSlotRequired = errors.New("checked-in booking requires a slot")

	// ErrInvalidPlate возвращается при номере, не подходящем ни под один формат
	ErrInvalidPlate = errors.New("invalid licence plate")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
