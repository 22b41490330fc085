package encounter

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/skyfleet/starhunt/internal/model"
)

type SlotSuite struct {
	suite.Suite
	slot *Slot
}

func TestSlotSuite(t *testing.T) {
	suite.Run(t, new(SlotSuite))
}

func (s *SlotSuite) SetupTest() {
	s.slot = NewSlot()
}

func testEncounter(id model.EncounterID) *model.Encounter {
	return &model.Encounter{
		ID:      id,
		Channel: "channel-1",
		Ship: model.ShipDefinition{
			Name:    "Frigate",
			Stats:   map[string]int{model.StatHP: 200},
			Weapons: []model.Weapon{{Name: "Plasma Lance", Damage: 25}},
		},
	}
}

func (s *SlotSuite) TestEmptySlot() {
	s.False(s.slot.Occupied())

	_, err := s.slot.Peek()
	s.ErrorIs(err, model.ErrNoEncounterActive)

	_, err = s.slot.Take()
	s.ErrorIs(err, model.ErrNoEncounterActive)
}

func (s *SlotSuite) TestPublishAndPeek() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))
	s.True(s.slot.Occupied())

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.Equal(model.EncounterID("enc-1"), enc.ID)
	s.Equal(model.ShipName("Frigate"), enc.Ship.Name)
}

func (s *SlotSuite) TestSecondPublishFails() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))

	err := s.slot.Publish(testEncounter("enc-2"))
	s.ErrorIs(err, model.ErrEncounterActive)

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.Equal(model.EncounterID("enc-1"), enc.ID)
}

func (s *SlotSuite) TestResolveClearsMatchingEncounter() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))

	s.True(s.slot.Resolve("enc-1"))
	s.False(s.slot.Occupied())
}

func (s *SlotSuite) TestResolveOnlyOnce() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))

	s.True(s.slot.Resolve("enc-1"))
	s.False(s.slot.Resolve("enc-1"))
}

func (s *SlotSuite) TestResolveIgnoresStaleID() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-2")))

	s.False(s.slot.Resolve("enc-1"))
	s.True(s.slot.Occupied())
}

func (s *SlotSuite) TestTakeRemovesEncounter() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))

	enc, err := s.slot.Take()
	s.Require().NoError(err)
	s.Equal(model.EncounterID("enc-1"), enc.ID)
	s.False(s.slot.Occupied())
}

func (s *SlotSuite) TestConcurrentPublishesAdmitExactlyOne() {
	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	published := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			enc := testEncounter(model.EncounterID(fmt.Sprintf("enc-%d", i)))
			if err := s.slot.Publish(enc); err == nil {
				mu.Lock()
				published++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, published)
	s.True(s.slot.Occupied())
}

func (s *SlotSuite) TestConcurrentResolvesClaimExactlyOnce() {
	s.Require().NoError(s.slot.Publish(testEncounter("enc-1")))

	const claimants = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	claimed := 0

	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.slot.Resolve("enc-1") {
				mu.Lock()
				claimed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, claimed)
}
