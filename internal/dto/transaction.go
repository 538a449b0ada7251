package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawTransaction is the loose shape a ledger transaction arrives in.
type RawTransaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Method      string `json:"method"`
	Amount      any    `json:"amount"`
	Currency    string `json:"currency"`
	Rate        any    `json:"rate"`
	ClientID    string `json:"clientID"`
	OrderID     string `json:"orderID"`
	RelatedID   string `json:"relatedID"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Version     any    `json:"version"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToDomain sanitizes the raw transaction into the strict domain type.
func (r RawTransaction) ToDomain() domain.Transaction {
	return domain.Transaction{
		SyncMeta:    parseMeta(r.ID, r.Version, r.UpdatedAt),
		Type:        parseTxnType(r.Type),
		Method:      parseMethod(r.Method),
		Amount:      parseAmount(r.Amount),
		Currency:    parseCurrency(r.Currency),
		Rate:        parseAmount(r.Rate),
		ClientID:    r.ClientID,
		OrderID:     r.OrderID,
		RelatedID:   r.RelatedID,
		Description: r.Description,
		Date:        parseTime(r.Date),
	}
}

// ToDomainTransactions sanitizes a whole raw collection.
func ToDomainTransactions(raw []RawTransaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
