package services

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
	"github.com/dukkan-app/ledger_core/internal/core/ports"
	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
)

// legacyOrderRef extracts an order reference from free-text descriptions.
// Legacy-compatibility only: it is consulted last, after the explicit OrderID
// and RelatedID fields, so new data paths never reach it.
var legacyOrderRef = regexp.MustCompile(`(?i)order[\s#:_-]*([A-Za-z0-9][A-Za-z0-9_-]*)`)

// LedgerService folds sale, transaction and expense events into the four
// tracked channel balances. Aggregate is a pure function of its inputs;
// malformed rows contribute zero instead of aborting the fold.
type LedgerService struct {
	BaseService
	rates numeric.RateResolver
}

// NewLedgerService creates a new LedgerService. The zero RateResolver uses the
// system default rate and sanity floor.
func NewLedgerService(rates numeric.RateResolver) *LedgerService {
	return &LedgerService{rates: rates}
}

// Aggregate computes the per-channel cash balances for the given collections.
// Processing order matters and must not change:
//
//  1. Orders paid by cash/bank/card credit their channel directly. Debt and
//     mixed orders are skipped; their cash effect arrives as transactions.
//  2. Transactions fold by (type, method). A client payment is skipped when it
//     is already represented by an order credited in step 1.
//  3. Expenses fold by payment method, deducted, unless the same id already
//     appeared among the transactions.
func (s *LedgerService) Aggregate(ctx context.Context, orders []domain.Order, transactions []domain.Transaction, expenses []domain.Expense, defaultRate decimal.Decimal) domain.Balances {
	var balances domain.Balances

	// step 1: direct order credits
	credited := make(map[string]bool, len(orders))
	for _, order := range orders {
		if !order.Channel.IsDirect() {
			continue
		}
		amount := order.CreditedAmount()
		if !amount.IsPositive() {
			continue
		}
		rate := s.rates.Resolve(order.Rate, defaultRate)
		balances = balances.Add(post(order.Channel, order.Currency, amount, rate))
		credited[order.ID] = true
	}

	// step 2: transaction folding
	transactionIDs := make(map[string]bool, len(transactions))
	for _, txn := range transactions {
		if txn.ID != "" {
			transactionIDs[txn.ID] = true
		}
		if !txn.Method.IsDirect() || !txn.Amount.IsPositive() {
			continue
		}
		rate := s.rates.Resolve(txn.Rate, defaultRate)
		switch {
		case txn.Type == domain.TxnClientPayment:
			if s.settlesCreditedOrder(txn, credited) {
				continue
			}
			balances = balances.Add(post(txn.Method, txn.Currency, txn.Amount, rate))
		case txn.Type.Subtracts():
			balances = balances.Add(post(txn.Method, txn.Currency, txn.Amount.Neg(), rate))
		}
	}

	// step 3: expense deduction, de-duplicated against transactions
	for _, expense := range expenses {
		if transactionIDs[expense.ID] {
			continue
		}
		if !expense.PaymentMethod.IsDirect() || !expense.Amount.IsPositive() {
			continue
		}
		rate := s.rates.Resolve(expense.Rate, defaultRate)
		balances = balances.Add(post(expense.PaymentMethod, expense.Currency, expense.Amount.Neg(), rate))
	}

	s.LogDebug(ctx, "aggregated channel balances",
		slog.Int("orders", len(orders)),
		slog.Int("transactions", len(transactions)),
		slog.Int("expenses", len(expenses)),
		slog.String("cash_usd", balances.CashUSD.String()),
	)
	return balances
}

// AggregateFrom aggregates with the default rate pulled from a rate provider.
// A nil provider leaves rate resolution entirely to the sanity-floor fallback
// chain.
func (s *LedgerService) AggregateFrom(ctx context.Context, provider ports.RateProvider, orders []domain.Order, transactions []domain.Transaction, expenses []domain.Expense) domain.Balances {
	defaultRate := decimal.Zero
	if provider != nil {
		defaultRate = provider.DefaultRate(ctx)
	}
	return s.Aggregate(ctx, orders, transactions, expenses, defaultRate)
}

// settlesCreditedOrder reports whether a client payment is already represented
// by an order credited in step 1. Resolution order: the explicit OrderID link,
// then a RelatedID that references a credited order, then a legacy free-text
// extraction from the description. Unresolvable links default to "count it".
func (s *LedgerService) settlesCreditedOrder(txn domain.Transaction, credited map[string]bool) bool {
	if txn.OrderID != "" {
		return credited[txn.OrderID]
	}
	if txn.RelatedID != "" && credited[txn.RelatedID] {
		return true
	}
	if m := legacyOrderRef.FindStringSubmatch(txn.Description); m != nil {
		return credited[m[1]]
	}
	return false
}

// post builds a single-channel balance contribution. Cash splits by currency;
// bank and card balances are kept in LBP, so foreign amounts convert at the
// resolved rate on the way in.
func post(method domain.PaymentMethod, currency domain.Currency, amount, rate decimal.Decimal) domain.Balances {
	var b domain.Balances
	switch method {
	case domain.MethodCash:
		if currency == domain.CurrencyUSD {
			b.CashUSD = amount
		} else {
			b.CashLBP = amount
		}
	case domain.MethodBank:
		b.BankLBP = toLocal(amount, currency, rate)
	case domain.MethodCard:
		b.CardLBP = toLocal(amount, currency, rate)
	}
	return b
}

func toLocal(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) decimal.Decimal {
	if currency == domain.CurrencyUSD {
		return amount.Mul(rate)
	}
	return amount
}
