package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukkan-app/ledger_core/internal/apperrors"
	"github.com/dukkan-app/ledger_core/internal/core/domain"
	"github.com/dukkan-app/ledger_core/internal/core/ports"
)

// SyncService supplies the version and timestamp helpers the persistence layer
// calls around every write. The conflict notifier is injected per instance;
// there is deliberately no process-wide handler.
type SyncService struct {
	BaseService
	notifier ports.ConflictNotifier
}

// NewSyncService creates a new SyncService. A nil notifier is allowed; stale
// writes are then only rejected, not reported.
func NewSyncService(notifier ports.ConflictNotifier) *SyncService {
	return &SyncService{notifier: notifier}
}

// Stamp advances a record's sync metadata for a newly accepted write. Version
// and UpdatedAt move together: a record written for the first time gets
// version 1.
func (s *SyncService) Stamp(meta *domain.SyncMeta) {
	if meta == nil {
		return
	}
	meta.UpdatedAt = time.Now().UTC()
	if meta.Version < 1 {
		meta.Version = 1
		return
	}
	meta.Version++
}

// StampAll stamps a batch of records in one pass.
func (s *SyncService) StampAll(metas ...*domain.SyncMeta) {
	for _, meta := range metas {
		s.Stamp(meta)
	}
}

// NextVersion validates an incoming write against the stored record and
// returns the version the accepted write must carry. A write whose version is
// older than the stored one is a conflict: it is rejected with
// apperrors.ErrVersionConflict and reported through the notifier, never
// silently accepted. Equal versions are the normal optimistic case (read v,
// write v, store v+1).
func (s *SyncService) NextVersion(ctx context.Context, entity string, stored, incoming domain.SyncMeta) (int64, error) {
	if incoming.Version < stored.Version {
		event := ports.ConflictEvent{
			EventID:         uuid.NewString(),
			Entity:          entity,
			RecordID:        stored.ID,
			StoredVersion:   stored.Version,
			IncomingVersion: incoming.Version,
			DetectedAt:      time.Now().UTC(),
		}
		if s.notifier != nil {
			s.notifier.NotifyConflict(ctx, event)
		}
		s.LogDebug(ctx, "rejected stale write",
			slog.String("entity", entity),
			slog.String("record_id", stored.ID),
			slog.Int64("stored_version", stored.Version),
			slog.Int64("incoming_version", incoming.Version),
		)
		return 0, fmt.Errorf("%w: %s %s carries version %d behind stored version %d",
			apperrors.ErrVersionConflict, entity, stored.ID, incoming.Version, stored.Version)
	}
	next := incoming.Version + 1
	if next < 1 {
		next = 1
	}
	return next, nil
}
