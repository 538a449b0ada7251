package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawClient is the loose shape a client record arrives in.
type RawClient struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Debt         any    `json:"debt"`
	DebtCurrency string `json:"debtCurrency"`
	Version      any    `json:"version"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToDomain sanitizes the raw client into the strict domain type. Debt is kept
// signed so the integrity monitor can compare it against the recomputed value.
func (r RawClient) ToDomain() domain.Client {
	return domain.Client{
		SyncMeta:     parseMeta(r.ID, r.Version, r.UpdatedAt),
		Name:         r.Name,
		Phone:        r.Phone,
		Debt:         sanitizeSigned(r.Debt),
		DebtCurrency: parseCurrency(r.DebtCurrency),
	}
}

// ToDomainClients sanitizes a whole raw collection.
func ToDomainClients(raw []RawClient) []domain.Client {
	out := make([]domain.Client, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
