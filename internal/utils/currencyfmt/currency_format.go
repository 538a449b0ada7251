package currencyfmt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
)

// FormatAmount formats an amount with the symbol and grouping of its currency.
// Example: 1234.5 USD renders as "$1,234.50"; 150000 LBP keeps its own
// fraction and grouping rules.
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	cur := money.GetCurrency(string(currency))
	if cur == nil {
		return amount.String() + " " + string(currency)
	}
	minor := amount.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), cur.Code).Display()
}
