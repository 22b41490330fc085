package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	path  string
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "ledger.json")
	store, err := New(s.path)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) TestLoadMissingFileReturnsEmptyDocument() {
	doc, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(doc.Participants)
}

func (s *StoreSuite) TestRoundTrip() {
	doc := model.NewLedgerDocument()
	doc.Participants["user-1"] = &model.Participant{
		ID:         "user-1",
		Balance:    25000,
		OwnedShips: []model.ShipName{"Corvette", "Frigate"},
		Flagship:   "Corvette",
		Wins:       3,
		Losses:     2,
		LastClaim:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		CreatedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	doc.Participants["user-2"] = &model.Participant{
		ID:        "user-2",
		Balance:   100,
		CreatedAt: time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.store.Replace(s.ctx, doc))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(doc.Participants, loaded.Participants)
}

func (s *StoreSuite) TestReplaceOverwritesPreviousDocument() {
	first := model.NewLedgerDocument()
	first.Participants["user-1"] = &model.Participant{ID: "user-1", Balance: 100}
	s.Require().NoError(s.store.Replace(s.ctx, first))

	second := model.NewLedgerDocument()
	second.Participants["user-1"] = &model.Participant{ID: "user-1", Balance: 200}
	s.Require().NoError(s.store.Replace(s.ctx, second))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(200, loaded.Participants["user-1"].Balance)
}

func (s *StoreSuite) TestLoadMalformedFileFails() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	_, err := s.store.Load(s.ctx)
	s.ErrorIs(err, model.ErrDataUnavailable)
}

func (s *StoreSuite) TestNewCreatesParentDirectories() {
	nested := filepath.Join(s.T().TempDir(), "a", "b", "ledger.json")
	store, err := New(nested)
	s.Require().NoError(err)

	s.Require().NoError(store.Replace(s.ctx, model.NewLedgerDocument()))
	_, err = os.Stat(nested)
	s.NoError(err)
}
