package create_cost_rule

import "time"

// Request запрос на создание тарифа
type Request struct {
	Name       string
	CompanyID  int64
	HourlyRate float64

	// ReplaceActive true деактивирует действующий тариф вместо конфликта
	ReplaceActive bool
}

// Response созданный тариф
type Response struct {
	ID         int64
	Name       string
	CompanyID  int64
	HourlyRate float64
	Active     bool
	CreatedAt  time.Time
}
