package domain

import "github.com/shopspring/decimal"

// Employee is a staff record, audited for identity and required fields only.
type Employee struct {
	SyncMeta
	Name     string          `json:"name" validate:"required"`
	Phone    string          `json:"phone"`
	Salary   decimal.Decimal `json:"salary"`
	Currency Currency        `json:"currency"`
}
