package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single cash-affecting ledger event. Client payments add to
// the channel named by Method; supplier payments, returns, refunds and expenses
// subtract from it. A transaction with Method debt affects client debt only.
type Transaction struct {
	SyncMeta
	Type     TransactionType `json:"type"`
	Method   PaymentMethod   `json:"method"`
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
	Rate     decimal.Decimal `json:"rate"` // exchange rate at event time, zero when unset
	ClientID string          `json:"clientID"`
	// OrderID is the explicit link to the order this transaction settles.
	// RelatedID and Description are legacy linkage carriers, consulted only
	// when OrderID is empty.
	OrderID     string    `json:"orderID"`
	RelatedID   string    `json:"relatedID"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Subtracts reports whether the transaction type removes money from a channel.
func (t TransactionType) Subtracts() bool {
	switch t {
	case TxnSupplierPayment, TxnClientReturn, TxnClientRefund, TxnExpense:
		return true
	}
	return false
}
