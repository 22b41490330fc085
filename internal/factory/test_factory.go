package factory

import (
	"time"

	"github.com/skyfleet/starhunt/internal/dependencies/mocks"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/battle"
	"github.com/skyfleet/starhunt/internal/services/economy"
	"github.com/skyfleet/starhunt/internal/services/spawner"
	"github.com/skyfleet/starhunt/internal/storage/memory"
	"github.com/skyfleet/starhunt/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	cfg := Config{
		Channels:      []string{"bridge"},
		EconomyConfig: economy.DefaultConfig(),
		BattleConfig:  battle.DefaultConfig(),
		SpawnerConfig: spawner.DefaultConfig(),
	}

	app := newWithDependencies(cfg, store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestCatalog loads a small ship catalog for testing
func (t *TestApp) LoadTestCatalog() error {
	return t.CatalogService.LoadShips([]model.ShipDefinition{
		{
			Name:     "Shuttle",
			Category: "civilian",
			Stats:    map[string]int{model.StatHP: 50},
			Weapons:  []model.Weapon{{Name: "Pea Shooter", Damage: 2}},
		},
		{
			Name:     "Corvette",
			Category: "escort",
			Stats:    map[string]int{model.StatHP: 100, model.StatPrice: 25000},
			Weapons:  []model.Weapon{{Name: "Railgun", Damage: 25}},
			Defenses: []model.Defense{{Name: "Deflector", Value: 12}},
		},
		{
			Name:     "Marauder",
			Category: "raider",
			Stats:    map[string]int{model.StatHP: 80, model.StatPrice: 40000},
			Weapons:  []model.Weapon{{Name: "Twin Lasers", Damage: 30}},
			Modules:  []model.Module{{Name: "Cargo Pod", Value: 1}},
		},
	})
}
