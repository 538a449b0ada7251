// Package dto holds the loose record shapes that arrive from the document
// store and from hand-entered import data, together with the single
// sanitization boundary converting them into strict domain types. Amount-like
// fields are typed `any` because the upstream data mixes numbers and
// locale-formatted strings; conversion happens here exactly once, and nowhere
// past this boundary.
package dto

import (
	"strings"
	"time"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// timeFormats are tried in order when parsing loose timestamp strings.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// millisEpochFloor: numeric timestamps above this are millisecond epochs.
var millisEpochFloor = decimal.NewFromInt(1_000_000_000_000)

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// legacy records store millisecond epoch timestamps
	if ms := numeric.SanitizeNumber(s); ms.GreaterThanOrEqual(millisEpochFloor) {
		return time.UnixMilli(ms.IntPart()).UTC()
	}
	return time.Time{}
}

func parseCurrency(s string) domain.Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(domain.CurrencyLBP)) {
		return domain.CurrencyLBP
	}
	return domain.CurrencyUSD
}

func parseMethod(s string) domain.PaymentMethod {
	switch m := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case domain.MethodCash, domain.MethodBank, domain.MethodCard, domain.MethodDebt, domain.MethodMixed:
		return m
	default:
		return domain.MethodCash
	}
}

func parseTxnType(s string) domain.TransactionType {
	return domain.TransactionType(strings.ToLower(strings.TrimSpace(s)))
}

// sanitizeSigned keeps the sign of the input. Used for fields whose negative
// values are meaningful to the integrity monitor (stock quantity, stored debt).
func sanitizeSigned(v any) decimal.Decimal {
	return numeric.SanitizeNumber(v)
}

// parseAmount clamps to zero: monetary event amounts are non-negative by
// invariant, with direction implied by the event kind.
func parseAmount(v any) decimal.Decimal {
	amount := numeric.SanitizeNumber(v)
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func parseMeta(id string, version any, updatedAt string) domain.SyncMeta {
	v := numeric.SanitizeNumber(version).IntPart()
	if v < 0 {
		v = 0
	}
	return domain.SyncMeta{
		ID:        strings.TrimSpace(id),
		Version:   v,
		UpdatedAt: parseTime(updatedAt),
	}
}
