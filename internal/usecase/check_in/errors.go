package check_in

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotFound возвращается, когда место не найдено
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotRequired возвращается, когда место не указано
	ErrSlotRequired = errors.New("slot is required for check-in")

	// ErrInvalidTransition возвращается, когда check-in невозможен из текущего состояния
	ErrInvalidTransition = errors.New("booking state does not allow check-in")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)

// SlotOccupiedError возвращается при попытке заезда на занятое место.
// Несёт номер машины, которая держит место, для текста конфликта.
type SlotOccupiedError struct {
	SlotCode       string
	OccupyingPlate string
}

func (e *SlotOccupiedError) Error() string {
	if e.OccupyingPlate == "" {
		return fmt.Sprintf("slot %s is already occupied", e.SlotCode)
	}
	return fmt.Sprintf("slot %s is already occupied by vehicle %s", e.SlotCode, e.OccupyingPlate)
}
