package services

import (
	"github.com/shopspring/decimal"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
)

// MergeByID reconciles a locally-mutated and a remotely-mutated collection by
// key union on record id. Where both sides hold the same id, the side with the
// more recent UpdatedAt wins; ties favor local (offline-first bias). Ids unique
// to either side pass through unchanged. Output order is deterministic: local
// order first, then remote-only records in their input order. Merging a
// collection with itself returns it unchanged.
func MergeByID[T domain.Versioned](local, remote []T) []T {
	merged := make([]T, 0, len(local)+len(remote))
	index := make(map[string]int, len(local))

	for _, rec := range local {
		if at, ok := index[rec.RecordID()]; ok {
			// duplicate within one side: keep the newer write
			if rec.LastUpdated().After(merged[at].LastUpdated()) {
				merged[at] = rec
			}
			continue
		}
		index[rec.RecordID()] = len(merged)
		merged = append(merged, rec)
	}
	for _, rec := range remote {
		at, ok := index[rec.RecordID()]
		if !ok {
			index[rec.RecordID()] = len(merged)
			merged = append(merged, rec)
			continue
		}
		if rec.LastUpdated().After(merged[at].LastUpdated()) {
			merged[at] = rec
		}
	}
	return merged
}

// MergeProductsWithDelta merges product collections like MergeByID, except for
// the stock accumulator. When a base snapshot is available and both sides
// changed Quantity relative to it, the two changes are treated as additive
// events: merged quantity is max(0, base + localDelta + remoteDelta), and
// CostPrice becomes the delta-weighted average of the base stock and each
// side's contribution. Last-writer-wins on an accumulator would silently drop
// one user's concurrent stock movement.
//
// Every other field stays last-writer-wins. The delta treatment is correct
// only because Quantity is a running total, not an arbitrary attribute.
func MergeProductsWithDelta(local, remote, base []domain.Product) []domain.Product {
	merged := MergeByID(local, remote)
	if len(base) == 0 {
		return merged
	}

	baseIdx := indexByID(base)
	localIdx := indexByID(local)
	remoteIdx := indexByID(remote)

	for i, rec := range merged {
		b, okB := baseIdx[rec.ID]
		l, okL := localIdx[rec.ID]
		r, okR := remoteIdx[rec.ID]
		if !okB || !okL || !okR {
			continue
		}
		// identical quantity and timestamp on both sides is one write seen
		// twice, not two concurrent edits; merging a collection with itself
		// must return it unchanged
		if l.Quantity.Equal(r.Quantity) && l.UpdatedAt.Equal(r.UpdatedAt) {
			continue
		}
		localDelta := l.Quantity.Sub(b.Quantity)
		remoteDelta := r.Quantity.Sub(b.Quantity)
		if localDelta.IsZero() || remoteDelta.IsZero() {
			continue
		}
		quantity := b.Quantity.Add(localDelta).Add(remoteDelta)
		if quantity.IsNegative() {
			quantity = decimal.Zero
		}
		rec.Quantity = quantity
		rec.CostPrice = deltaWeightedCost(b, l, r, localDelta, remoteDelta, rec.CostPrice)
		merged[i] = rec
	}
	return merged
}

func indexByID(products []domain.Product) map[string]domain.Product {
	idx := make(map[string]domain.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// deltaWeightedCost averages the unit cost across the base stock and both
// sides' stock movements, each weighted by its quantity contribution. Falls
// back to the last-writer-wins cost when the weights do not form a positive
// total (e.g. both sides removed stock).
func deltaWeightedCost(b, l, r domain.Product, localDelta, remoteDelta, fallback decimal.Decimal) decimal.Decimal {
	total := b.Quantity.Add(localDelta).Add(remoteDelta)
	if !total.IsPositive() {
		return fallback
	}
	weighted := b.Quantity.Mul(b.CostPrice).
		Add(localDelta.Mul(l.CostPrice)).
		Add(remoteDelta.Mul(r.CostPrice))
	cost := weighted.Div(total)
	if cost.IsNegative() {
		return fallback
	}
	return cost
}
