package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/storage"
)

// Store is a Redis-backed implementation of the ledger store. The whole
// ledger document lives under a single key and is replaced as a unit,
// matching the file backend's whole-document semantics.
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis ledger store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ storage.LedgerStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) (*model.LedgerDocument, error) {
	data, err := s.client.Get(ctx, ledgerKey(s.cfg.KeyPrefix)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	return s.client.Set(ctx, ledgerKey(s.cfg.KeyPrefix), data, 0).Err()
}

// ledgerKey returns the Redis key holding the ledger document
func ledgerKey(prefix string) string {
	return fmt.Sprintf("%s:ledger", prefix)
}
