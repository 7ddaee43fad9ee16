package usecase

import (
	"context"
	"time"

	"github.com/iho/budgetledger/internal/domain"
)

// EntryStore persists the whole ledger as a snapshot.
type EntryStore interface {
	// Load returns every persisted entry in insertion order.
	// A store that does not exist yet yields an empty ledger.
	Load(ctx context.Context) ([]domain.Entry, error)
	// Save replaces the persisted ledger with exactly entries.
	Save(ctx context.Context, entries []domain.Entry) error
}

// Clock supplies entry timestamps.
type Clock interface {
	Now() time.Time
}

// MetricsRecorder receives ledger service events.
type MetricsRecorder interface {
	EntryAdded(entryType domain.EntryType)
	ValidationFailed(reason string)
}
