package spawner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/dependencies/mocks"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/testutil"
)

type recordingNotifier struct {
	events []model.RenderEvent
}

func (n *recordingNotifier) Send(ctx context.Context, event model.RenderEvent) error {
	n.events = append(n.events, event)
	return nil
}

// flakyResolver reports every channel as eligible but refuses to
// resolve the ones in bad
type flakyResolver struct {
	channels []model.ChannelID
	bad      map[model.ChannelID]bool
}

func (r *flakyResolver) Eligible(ctx context.Context) ([]model.ChannelID, error) {
	return r.channels, nil
}

func (r *flakyResolver) Resolve(ctx context.Context, channel model.ChannelID) error {
	if r.bad[channel] {
		return model.ErrChannelUnresolvable
	}
	return nil
}

type SpawnerSuite struct {
	suite.Suite
	catalog  *catalog.Service
	slot     *encounter.Slot
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	notifier *recordingNotifier
	ctx      context.Context
}

func TestSpawnerSuite(t *testing.T) {
	suite.Run(t, new(SpawnerSuite))
}

func (s *SpawnerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.catalog = catalog.New(logger, []string{"Dreadnought"})
	s.slot = encounter.NewSlot()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.notifier = &recordingNotifier{}
	s.ctx = context.Background()

	s.Require().NoError(s.catalog.LoadShips([]model.ShipDefinition{
		{
			Name:     "Corvette",
			Category: "escort",
			Stats:    map[string]int{model.StatHP: 100},
			Weapons:  []model.Weapon{{Name: "Railgun", Damage: 25}},
		},
		{
			Name:     "Frigate",
			Category: "escort",
			Stats:    map[string]int{model.StatHP: 160, model.StatPrice: 20000},
			Weapons:  []model.Weapon{{Name: "Beam Array", Damage: 18}},
		},
		{
			Name:     "Dreadnought",
			Category: "capital",
			Stats:    map[string]int{model.StatHP: 900},
			Weapons:  []model.Weapon{{Name: "Spinal Lance", Damage: 120}},
		},
	}))
}

func (s *SpawnerSuite) newService(resolver chat.ChannelResolver) *Service {
	cfg := DefaultConfig()
	cfg.JitterMax = 0
	svc := New(s.catalog, s.slot, resolver, s.notifier, s.clock, s.random, testutil.NopLogger(), cfg)
	svc.sleep = func(ctx context.Context, d time.Duration) {}
	return svc
}

func (s *SpawnerSuite) TestSpawnPublishesEncounterAndAnnounces() {
	resolver := chat.NewStaticResolver([]model.ChannelID{"bridge", "hangar"})
	svc := s.newService(resolver)

	// ship index 1 (Frigate), channel index 1 (hangar)
	s.random.QueueIntn(1, 1)

	svc.SpawnTick(s.ctx)

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.Equal(model.ShipName("Frigate"), enc.Ship.Name)
	s.Equal(model.ChannelID("hangar"), enc.Channel)
	s.Equal(s.clock.Now(), enc.SpawnedAt)
	s.NotEmpty(enc.ID)

	s.Require().Len(s.notifier.events, 1)
	s.Equal(model.EventEncounterSpawned, s.notifier.events[0].Kind)
	s.Equal(model.ChannelID("hangar"), s.notifier.events[0].Channel)
}

func (s *SpawnerSuite) TestSkipsWhenEncounterAlreadyActive() {
	resolver := chat.NewStaticResolver([]model.ChannelID{"bridge"})
	svc := s.newService(resolver)

	s.Require().NoError(s.slot.Publish(&model.Encounter{ID: "enc-1", Channel: "bridge"}))

	svc.SpawnTick(s.ctx)

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.Equal(model.EncounterID("enc-1"), enc.ID)
	s.Empty(s.notifier.events)
}

func (s *SpawnerSuite) TestBossShipsNeverSpawn() {
	resolver := chat.NewStaticResolver([]model.ChannelID{"bridge"})
	svc := s.newService(resolver)

	// Spawnable excludes the Dreadnought, so index 1 of the remaining
	// two picks the Frigate
	s.random.QueueIntn(1, 0)

	svc.SpawnTick(s.ctx)

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.NotEqual(model.ShipName("Dreadnought"), enc.Ship.Name)
}

func (s *SpawnerSuite) TestUnresolvableChannelSuppressesSpawn() {
	resolver := &flakyResolver{
		channels: []model.ChannelID{"bridge"},
		bad:      map[model.ChannelID]bool{"bridge": true},
	}
	svc := s.newService(resolver)

	svc.SpawnTick(s.ctx)

	s.False(s.slot.Occupied())
	s.Empty(s.notifier.events)
}

func (s *SpawnerSuite) TestRecheckAfterJitterClosesCaptureRace() {
	resolver := chat.NewStaticResolver([]model.ChannelID{"bridge"})
	cfg := DefaultConfig()
	svc := New(s.catalog, s.slot, resolver, s.notifier, s.clock, s.random, testutil.NopLogger(), cfg)

	// A capture-then-publish by someone else lands during the jitter
	// sleep; the tick must stand down
	svc.sleep = func(ctx context.Context, d time.Duration) {
		s.Require().NoError(s.slot.Publish(&model.Encounter{ID: "raced", Channel: "bridge"}))
	}

	svc.SpawnTick(s.ctx)

	enc, err := s.slot.Peek()
	s.Require().NoError(err)
	s.Equal(model.EncounterID("raced"), enc.ID)
	s.Empty(s.notifier.events)
}

func (s *SpawnerSuite) TestRunRefusesWithoutEligibleChannels() {
	resolver := chat.NewStaticResolver(nil)
	svc := s.newService(resolver)

	s.Require().NoError(svc.Run(s.ctx))
	s.False(s.slot.Occupied())
}

func (s *SpawnerSuite) TestRunStopsOnContextCancel() {
	resolver := chat.NewStaticResolver([]model.ChannelID{"bridge"})
	cfg := DefaultConfig()
	cfg.Period = time.Hour
	svc := New(s.catalog, s.slot, resolver, s.notifier, s.clock, s.random, testutil.NopLogger(), cfg)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		s.Require().True(errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		s.Fail("spawner did not stop on cancel")
	}
}
