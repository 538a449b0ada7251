package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawEmployee is the loose shape an employee record arrives in.
type RawEmployee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Salary    any    `json:"salary"`
	Currency  string `json:"currency"`
	Version   any    `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

// ToDomain sanitizes the raw employee into the strict domain type.
func (r RawEmployee) ToDomain() domain.Employee {
	return domain.Employee{
		SyncMeta: parseMeta(r.ID, r.Version, r.UpdatedAt),
		Name:     r.Name,
		Phone:    r.Phone,
		Salary:   parseAmount(r.Salary),
		Currency: parseCurrency(r.Currency),
	}
}

// ToDomainEmployees sanitizes a whole raw collection.
func ToDomainEmployees(raw []RawEmployee) []domain.Employee {
	out := make([]domain.Employee, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
