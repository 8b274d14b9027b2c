package adjust_cash

import "time"

// Request запрос на движение наличных в кассе
type Request struct {
	BoxID         int64
	UserID        int64
	Amount        float64 // всегда положительная, знак определяется видом
	Kind          string  // supplement или withdrawal
	PaymentFormID int64
	Comment       *string
}

// Response созданная проводка
type Response struct {
	LineID    int64
	BoxID     int64
	Kind      string
	Amount    float64 // сумма как сохранена: изъятие отрицательное
	CreatedAt time.Time
}
