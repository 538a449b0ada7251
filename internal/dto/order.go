package dto

import "github.com/dukkan-app/ledger_core/internal/core/domain"

// RawOrderLine is a loose order line item.
type RawOrderLine struct {
	ProductID string `json:"productID"`
	Quantity  any    `json:"quantity"`
	UnitPrice any    `json:"unitPrice"`
}

// RawOrder is the loose shape an order arrives in.
type RawOrder struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"clientID"`
	Lines      []RawOrderLine `json:"lines"`
	Total      any            `json:"total"`
	AmountPaid any            `json:"amountPaid"`
	Currency   string         `json:"currency"`
	Rate       any            `json:"rate"`
	Channel    string         `json:"channel"`
	Date       string         `json:"date"`
	Version    any            `json:"version"`
	UpdatedAt  string         `json:"updatedAt"`
}

// ToDomain sanitizes the raw order into the strict domain type.
func (r RawOrder) ToDomain() domain.Order {
	lines := make([]domain.OrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			Quantity:  parseAmount(l.Quantity),
			UnitPrice: parseAmount(l.UnitPrice),
		})
	}
	return domain.Order{
		SyncMeta:   parseMeta(r.ID, r.Version, r.UpdatedAt),
		ClientID:   r.ClientID,
		Lines:      lines,
		Total:      parseAmount(r.Total),
		AmountPaid: parseAmount(r.AmountPaid),
		Currency:   parseCurrency(r.Currency),
		Rate:       parseAmount(r.Rate),
		Channel:    parseMethod(r.Channel),
		Date:       parseTime(r.Date),
	}
}

// ToDomainOrders sanitizes a whole raw collection.
func ToDomainOrders(raw []RawOrder) []domain.Order {
	out := make([]domain.Order, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToDomain())
	}
	return out
}
