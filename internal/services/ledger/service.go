package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/skyfleet/starhunt/internal/dependencies/clock"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/storage"
)

// Service owns the participant ledger. Every mutation is a serialized
// read-transform-write cycle over the whole document: the mutex makes
// the cycle exclusive so two commands racing on different participants
// cannot overwrite each other's changes through the shared backing
// document.
type Service struct {
	store  storage.LedgerStore
	clock  clock.Clock
	logger *slog.Logger

	// mu serializes every read-modify-write round trip
	mu sync.Mutex
}

// New creates a new ledger service
func New(store storage.LedgerStore, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Get returns the participant's record, or model.ErrNotRegistered if no
// record exists. The returned record is a copy; mutating it does not
// touch the ledger.
func (s *Service) Get(ctx context.Context, id model.ParticipantID) (*model.Participant, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Participants[id]
	if !ok {
		return nil, model.ErrNotRegistered
	}
	return rec, nil
}

// Register creates a record with the given starting balance, an empty
// roster and zero counters. Fails with model.ErrAlreadyRegistered if a
// record exists.
func (s *Service) Register(ctx context.Context, id model.ParticipantID, startingBalance int) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := doc.Participants[id]; ok {
		return nil, model.ErrAlreadyRegistered
	}

	rec := &model.Participant{
		ID:        id,
		Balance:   startingBalance,
		CreatedAt: s.clock.Now(),
	}
	doc.Participants[id] = rec

	if err := s.store.Replace(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("participant registered",
		slog.String("participant_id", string(id)),
		slog.Int("starting_balance", startingBalance),
	)

	return rec, nil
}

// Mutate applies fn to the participant's record and persists the whole
// document before returning. If fn returns an error the mutation is
// abandoned and nothing is written. A failed write surfaces the error
// and the mutation is considered not applied.
func (s *Service) Mutate(ctx context.Context, id model.ParticipantID, fn func(*model.Participant) error) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Participants[id]
	if !ok {
		return nil, model.ErrNotRegistered
	}

	if err := fn(rec); err != nil {
		return nil, err
	}

	if err := s.store.Replace(ctx, doc); err != nil {
		s.logger.Error("ledger write failed",
			slog.String("participant_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return rec, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Get(ctx context.Context, id model.ParticipantID) (*model.Participant, error)
	Register(ctx context.Context, id model.ParticipantID, startingBalance int) (*model.Participant, error)
	Mutate(ctx context.Context, id model.ParticipantID, fn func(*model.Participant) error) (*model.Participant, error)
}

var _ ServiceInterface = (*Service)(nil)
