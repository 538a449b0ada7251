package ports

import (
	"context"
	"time"
)

// ConflictEvent describes a write that was rejected because it carried a
// version older than the currently stored one.
type ConflictEvent struct {
	EventID         string    `json:"eventID"`
	Entity          string    `json:"entity"`
	RecordID        string    `json:"recordID"`
	StoredVersion   int64     `json:"storedVersion"`
	IncomingVersion int64     `json:"incomingVersion"`
	DetectedAt      time.Time `json:"detectedAt"`
}

// ConflictNotifier receives version conflicts detected during sync. The
// persistence layer registers an implementation when constructing the sync
// service; there is no process-wide handler. Implementations must not block.
type ConflictNotifier interface {
	NotifyConflict(ctx context.Context, event ConflictEvent)
}

// ConflictNotifierFunc adapts a plain function to the ConflictNotifier interface.
type ConflictNotifierFunc func(ctx context.Context, event ConflictEvent)

// NotifyConflict calls f(ctx, event).
func (f ConflictNotifierFunc) NotifyConflict(ctx context.Context, event ConflictEvent) {
	f(ctx, event)
}
