package create_cost_rule

import "errors"

var (
	// ErrEmptyName возвращается, когда не указано имя тарифа
	ErrEmptyName = errors.New("cost rule name is required")

	// ErrInvalidRate возвращается при нулевой или отрицательной ставке
	ErrInvalidRate = errors.New("hourly rate must be greater than zero")

	// ErrActiveRuleExists возвращается, когда у двора уже есть активный тариф
	ErrActiveRuleExists = errors.New("yard already has an active cost rule")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
