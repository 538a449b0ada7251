package domain

import "github.com/shopspring/decimal"

// Product is a stocked item. Quantity is an accumulator field: concurrent edits
// to it are reconciled by delta-merge rather than last-writer-wins, and CostPrice
// is its companion weighted average (recomputed across contributions on merge).
type Product struct {
	SyncMeta
	Name         string          `json:"name" validate:"required"`
	Barcode      string          `json:"barcode"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	Quantity     decimal.Decimal `json:"quantity"`
	Currency     Currency        `json:"currency"`
}
