package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawProduct is the loose shape a product arrives in.
type RawProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Barcode      string `json:"barcode"`
	SellingPrice any    `json:"sellingPrice"`
	CostPrice    any    `json:"costPrice"`
	Quantity     any    `json:"quantity"`
	Currency     string `json:"currency"`
	Version      any    `json:"version"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToDomain sanitizes the raw product into the strict domain type. Quantity is
// deliberately not clamped: a negative stored quantity is real corruption the
// integrity monitor must be able to see.
func (r RawProduct) ToDomain() domain.Product {
	return domain.Product{
		SyncMeta:     parseMeta(r.ID, r.Version, r.UpdatedAt),
		Name:         r.Name,
		Barcode:      r.Barcode,
		SellingPrice: parseAmount(r.SellingPrice),
		CostPrice:    parseAmount(r.CostPrice),
		Quantity:     sanitizeSigned(r.Quantity),
		Currency:     parseCurrency(r.Currency),
	}
}

// ToDomainProducts sanitizes a whole raw collection.
func ToDomainProducts(raw []RawProduct) []domain.Product {
	out := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
