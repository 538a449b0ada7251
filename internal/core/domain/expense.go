package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost recorded outside the transaction log. An expense
// whose id also appears among the transactions is an alternate view of the same
// underlying record and must be deducted exactly once.
type Expense struct {
	SyncMeta
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	Rate          decimal.Decimal `json:"rate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
}
