package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/storage"
)

// Store is a file-backed implementation of the ledger store. The whole
// document is serialized as JSON and replaced atomically on every write
// (write-new-then-rename), so a crash mid-write leaves the previous
// durable snapshot intact.
type Store struct {
	path string
}

// New creates a file ledger store at the given path, creating parent
// directories as needed
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Ensure Store implements the interface
var _ storage.LedgerStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) (*model.LedgerDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: no ledger has been written yet
			return model.NewLedgerDocument(), nil
		}
		return nil, fmt.Errorf("%w: %v", model.ErrDataUnavailable, err)
	}

	var doc model.LedgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDataUnavailable, err)
	}
	if doc.Participants == nil {
		doc.Participants = make(map[model.ParticipantID]*model.Participant)
	}
	return &doc, nil
}

func (s *Store) Replace(ctx context.Context, doc *model.LedgerDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
