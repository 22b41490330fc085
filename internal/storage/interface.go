package storage

import (
	"context"

	"github.com/skyfleet/starhunt/internal/model"
)

// LedgerStore persists the participant ledger as a single document.
// Load returns an empty document when no ledger has been written yet;
// a present-but-unreadable document is model.ErrDataUnavailable.
// Replace swaps the entire durable document; a failed Replace must
// leave the previous durable document intact.
type LedgerStore interface {
	Load(ctx context.Context) (*model.LedgerDocument, error)
	Replace(ctx context.Context, doc *model.LedgerDocument) error
}
