package memory

import (
	"context"
	"testing"
	"time"

	"github.com/skyfleet/starhunt/internal/model"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestLoadEmptyDocument() {
	doc, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(doc.Participants)
}

func (s *StoreSuite) TestReplaceAndLoad() {
	doc := model.NewLedgerDocument()
	doc.Participants["user-1"] = &model.Participant{
		ID:         "user-1",
		Balance:    30000,
		OwnedShips: []model.ShipName{"Corvette"},
		Flagship:   "Corvette",
		Wins:       2,
		Losses:     1,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	err := s.store.Replace(s.ctx, doc)
	s.Require().NoError(err)

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(doc.Participants["user-1"], loaded.Participants["user-1"])
}

func (s *StoreSuite) TestLoadReturnsCopy() {
	doc := model.NewLedgerDocument()
	doc.Participants["user-1"] = &model.Participant{ID: "user-1", Balance: 100}
	s.Require().NoError(s.store.Replace(s.ctx, doc))

	first, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	first.Participants["user-1"].Balance = 999

	second, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(100, second.Participants["user-1"].Balance)
}

func (s *StoreSuite) TestReplaceDetachesCallerDocument() {
	doc := model.NewLedgerDocument()
	doc.Participants["user-1"] = &model.Participant{ID: "user-1", Balance: 100}
	s.Require().NoError(s.store.Replace(s.ctx, doc))

	doc.Participants["user-1"].Balance = 999

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(100, loaded.Participants["user-1"].Balance)
}
