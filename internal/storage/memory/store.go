package memory

import (
	"context"
	"sync"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/storage"
)

// Store is an in-memory implementation of the ledger store
type Store struct {
	mu  sync.RWMutex
	doc *model.LedgerDocument
}

// New creates a new in-memory ledger store
func New() *Store {
	return &Store{doc: model.NewLedgerDocument()}
}

// Ensure Store implements the interface
var _ storage.LedgerStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) (*model.LedgerDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

func (s *Store) Replace(ctx context.Context, doc *model.LedgerDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}
