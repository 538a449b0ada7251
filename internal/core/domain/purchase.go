package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a stock acquisition from a supplier.
type Purchase struct {
	SyncMeta
	SupplierName string          `json:"supplierName" validate:"required"`
	Total        decimal.Decimal `json:"total"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Currency     Currency        `json:"currency"`
	Rate         decimal.Decimal `json:"rate"`
	Date         time.Time       `json:"date"`
}
