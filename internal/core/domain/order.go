package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a single item position within an order.
type OrderLine struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is a sale. Orders paid by cash/bank/card credit their channel directly;
// orders with channel debt or mixed settle only through linked transactions.
type Order struct {
	SyncMeta
	ClientID   string          `json:"clientID"`
	Lines      []OrderLine     `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"` // may be less than Total (partial payment)
	Currency   Currency        `json:"currency"`
	Rate       decimal.Decimal `json:"rate"` // exchange rate at sale time, zero when unset
	Channel    PaymentMethod   `json:"channel"`
	Date       time.Time       `json:"date"`
}

// CreditedAmount is the amount an order posts to its channel: AmountPaid when
// positive, otherwise the order total.
func (o Order) CreditedAmount() decimal.Decimal {
	if o.AmountPaid.IsPositive() {
		return o.AmountPaid
	}
	return o.Total
}
