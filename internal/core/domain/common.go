package domain

import "time"

// Currency is the closed set of monetary units the ledger tracks.
type Currency string

const (
	// CurrencyUSD is the foreign unit. Cash in USD is tracked as its own balance.
	CurrencyUSD Currency = "USD"
	// CurrencyLBP is the local unit. Bank and card balances are kept in LBP.
	CurrencyLBP Currency = "LBP"
)

// PaymentMethod identifies the channel a monetary event settles through.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodBank  PaymentMethod = "bank"
	MethodCard  PaymentMethod = "card"
	MethodDebt  PaymentMethod = "debt"
	MethodMixed PaymentMethod = "mixed"
)

// IsDirect reports whether the method credits a tracked balance directly.
// Debt and mixed orders settle through linked transactions instead.
func (m PaymentMethod) IsDirect() bool {
	return m == MethodCash || m == MethodBank || m == MethodCard
}

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TxnClientPayment   TransactionType = "client_payment"
	TxnClientDebt      TransactionType = "client_debt"
	TxnSupplierPayment TransactionType = "supplier_payment"
	TxnClientReturn    TransactionType = "client_return"
	TxnClientRefund    TransactionType = "client_refund"
	TxnExpense         TransactionType = "expense"
)

// SyncMeta holds the identity and optimistic-concurrency metadata every synced
// entity carries. Version starts at 1 on first local write and advances together
// with UpdatedAt; it never decreases across accepted writes.
type SyncMeta struct {
	ID        string    `json:"id" validate:"required"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID returns the stable unique id of the record.
func (m SyncMeta) RecordID() string { return m.ID }

// LastUpdated returns the record's last modification time. The zero time means
// the record has never been stamped.
func (m SyncMeta) LastUpdated() time.Time { return m.UpdatedAt }

// Versioned is implemented by every entity embedding SyncMeta. The merge and
// version helpers operate on this surface only.
type Versioned interface {
	RecordID() string
	LastUpdated() time.Time
}
