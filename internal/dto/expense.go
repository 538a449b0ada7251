package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawExpense is the loose shape an expense record arrives in.
type RawExpense struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Amount        any    `json:"amount"`
	Currency      string `json:"currency"`
	Rate          any    `json:"rate"`
	PaymentMethod string `json:"paymentMethod"`
	Date          string `json:"date"`
	Version       any    `json:"version"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToDomain sanitizes the raw expense into the strict domain type.
func (r RawExpense) ToDomain() domain.Expense {
	return domain.Expense{
		SyncMeta:      parseMeta(r.ID, r.Version, r.UpdatedAt),
		Category:      r.Category,
		Description:   r.Description,
		Amount:        parseAmount(r.Amount),
		Currency:      parseCurrency(r.Currency),
		Rate:          parseAmount(r.Rate),
		PaymentMethod: parseMethod(r.PaymentMethod),
		Date:          parseTime(r.Date),
	}
}

// ToDomainExpenses sanitizes a whole raw collection.
func ToDomainExpenses(raw []RawExpense) []domain.Expense {
	out := make([]domain.Expense, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
