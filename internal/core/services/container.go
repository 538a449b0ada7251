package services

import (
	"github.com/dukkan-app/ledger_core/internal/core/ports"
	"github.com/dukkan-app/ledger_core/internal/platform/config"
	"github.com/dukkan-app/ledger_core/internal/utils/numeric"
)

// Container holds the reconciliation engines wired to shared tunables.
type Container struct {
	Ledger    *LedgerService
	Sync      *SyncService
	Integrity *IntegrityService
}

// NewContainer creates a new service container with properly initialized
// dependencies. A nil config uses the package defaults everywhere.
func NewContainer(cfg *config.Config, notifier ports.ConflictNotifier) *Container {
	rates := numeric.RateResolver{}
	container := &Container{}

	if cfg != nil {
		rates = numeric.RateResolver{
			Floor:   cfg.RateSanityFloor,
			Default: cfg.DefaultExchangeRate,
		}
		container.Integrity = NewIntegrityService(rates, cfg.DebtEpsilon, cfg.AmountEntryThreshold)
	} else {
		container.Integrity = NewIntegrityService(rates, DefaultDebtEpsilon, DefaultAmountEntryThreshold)
	}

	container.Ledger = NewLedgerService(rates)
	container.Sync = NewSyncService(notifier)
	return container
}
