package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider supplies the current default LBP/USD exchange rate. Sourcing of
// rates is outside this core; callers that track a live rate implement this
// and pass the resolved value into the aggregation engine.
type RateProvider interface {
	DefaultRate(ctx context.Context) decimal.Decimal
}
