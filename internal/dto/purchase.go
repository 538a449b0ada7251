package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawPurchase is the loose shape a supplier purchase arrives in.
type RawPurchase struct {
	ID           string `json:"id"`
	SupplierName string `json:"supplierName"`
	Total        any    `json:"total"`
	AmountPaid   any    `json:"amountPaid"`
	Currency     string `json:"currency"`
	Rate         any    `json:"rate"`
	Date         string `json:"date"`
	Version      any    `json:"version"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToDomain sanitizes the raw purchase into the strict domain type.
func (r RawPurchase) ToDomain() domain.Purchase {
	return domain.Purchase{
		SyncMeta:     parseMeta(r.ID, r.Version, r.UpdatedAt),
		SupplierName: r.SupplierName,
		Total:        parseAmount(r.Total),
		AmountPaid:   parseAmount(r.AmountPaid),
		Currency:     parseCurrency(r.Currency),
		Rate:         parseAmount(r.Rate),
		Date:         parseTime(r.Date),
	}
}

// ToDomainPurchases sanitizes a whole raw collection.
func ToDomainPurchases(raw []RawPurchase) []domain.Purchase {
	out := make([]domain.Purchase, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
