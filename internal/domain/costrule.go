package domain

import "time"

// CostRule is the hourly-rate rule for a yard. At most one rule may be
// active per yard at any time; the schema carries a matching partial
// unique index.
type CostRule struct {
	ID         int64
	Name       string
	CompanyID  int64
	HourlyRate float64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
