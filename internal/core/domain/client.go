package domain

import "github.com/shopspring/decimal"

// Client is a customer of the shop. Debt is the stored aggregate owed by the
// client; the integrity monitor cross-checks it against the client's
// transaction history.
type Client struct {
	SyncMeta
	Name         string          `json:"name" validate:"required"`
	Phone        string          `json:"phone"`
	Debt         decimal.Decimal `json:"debt"`
	DebtCurrency Currency        `json:"debtCurrency"`
}
