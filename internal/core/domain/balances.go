package domain

import "github.com/shopspring/decimal"

// Balances is the aggregation output: the four tracked ledger channels.
// Cash splits by currency; bank and card balances are kept in LBP, with
// foreign amounts converted at the resolved rate before posting.
type Balances struct {
	CashUSD decimal.Decimal `json:"cashUSD"`
	CashLBP decimal.Decimal `json:"cashLBP"`
	BankLBP decimal.Decimal `json:"bankLBP"`
	CardLBP decimal.Decimal `json:"cardLBP"`
}

// Add returns the channel-wise sum of two balance records.
func (b Balances) Add(o Balances) Balances {
	return Balances{
		CashUSD: b.CashUSD.Add(o.CashUSD),
		CashLBP: b.CashLBP.Add(o.CashLBP),
		BankLBP: b.BankLBP.Add(o.BankLBP),
		CardLBP: b.CardLBP.Add(o.CardLBP),
	}
}
