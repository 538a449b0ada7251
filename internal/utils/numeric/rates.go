package numeric

import "github.com/shopspring/decimal"

// DefaultSystemRate is the hardcoded LBP-per-USD rate used when neither the
// candidate nor the fallback rate passes the sanity floor.
var DefaultSystemRate = decimal.NewFromInt(89500)

// RateSanityFloor separates a plausible LBP/USD exchange rate from zero or
// uninitialized data. A rate at or below the floor is treated as "not
// configured"; there is no separate flag for that state.
var RateSanityFloor = decimal.NewFromInt(100)

// RateResolver resolves exchange rates against a sanity floor. The zero value
// uses the package defaults.
type RateResolver struct {
	Floor   decimal.Decimal
	Default decimal.Decimal
}

// Resolve returns candidate if it exceeds the sanity floor, else fallback if
// it does, else the system default.
func (r RateResolver) Resolve(candidate, fallback decimal.Decimal) decimal.Decimal {
	floor := r.Floor
	if floor.IsZero() {
		floor = RateSanityFloor
	}
	def := r.Default
	if def.IsZero() {
		def = DefaultSystemRate
	}
	if candidate.GreaterThan(floor) {
		return candidate
	}
	if fallback.GreaterThan(floor) {
		return fallback
	}
	return def
}

// ResolveRate resolves an exchange rate using the package default floor and
// system rate.
func ResolveRate(candidate, fallback decimal.Decimal) decimal.Decimal {
	return RateResolver{}.Resolve(candidate, fallback)
}
