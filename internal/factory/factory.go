package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/config"
	"github.com/skyfleet/starhunt/internal/dependencies/clock"
	"github.com/skyfleet/starhunt/internal/dependencies/random"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/battle"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/economy"
	"github.com/skyfleet/starhunt/internal/services/ledger"
	"github.com/skyfleet/starhunt/internal/services/spawner"
	"github.com/skyfleet/starhunt/internal/storage"
	filestorage "github.com/skyfleet/starhunt/internal/storage/file"
	"github.com/skyfleet/starhunt/internal/storage/memory"
	redisstorage "github.com/skyfleet/starhunt/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.LedgerStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Shared state
	Slot *encounter.Slot
	Bus  *chat.Bus

	// Services
	CatalogService    *catalog.Service
	LedgerService     *ledger.Service
	EconomyController *economy.Controller
	BattleEngine      *battle.Engine
	SpawnerService    *spawner.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// CatalogPath is the path to the ship definitions file (optional)
	// If empty, the catalog must be loaded manually
	CatalogPath string
	// BossShips lists definitions the spawner must never select
	BossShips []string
	// StorageType selects the ledger backend ("file", "memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// LedgerPath is the ledger document path (required for "file")
	LedgerPath string
	// RedisConfig holds Redis connection settings (required for "redis")
	RedisConfig *redisstorage.Config
	// Notifier receives render events; defaults to a discard notifier
	Notifier chat.Notifier
	// Channels is the eligible spawn channel set
	Channels []string

	EconomyConfig economy.Config
	BattleConfig  battle.Config
	SpawnerConfig spawner.Config
}

// FromEnv builds a factory Config out of the process configuration
func FromEnv(cfg *config.Config, logger *slog.Logger, notifier chat.Notifier) Config {
	economyCfg := economy.DefaultConfig()
	economyCfg.StartingBalance = cfg.StartingBalance
	economyCfg.ClaimCooldown = cfg.ClaimCooldown

	battleCfg := battle.DefaultConfig()
	battleCfg.ActionTimeout = cfg.ActionTimeout

	spawnerCfg := spawner.DefaultConfig()
	spawnerCfg.Period = cfg.SpawnPeriod
	spawnerCfg.JitterMax = cfg.SpawnJitter

	return Config{
		Logger:      logger,
		CatalogPath: cfg.CatalogPath,
		BossShips:   cfg.BossShips,
		StorageType: cfg.StorageType,
		LedgerPath:  cfg.LedgerPath,
		RedisConfig: &redisstorage.Config{
			URL:       cfg.RedisURL,
			KeyPrefix: cfg.RedisKeyPrefix,
		},
		Notifier:      notifier,
		Channels:      cfg.Channels,
		EconomyConfig: economyCfg,
		BattleConfig:  battleCfg,
		SpawnerConfig: spawnerCfg,
	}
}

type discardNotifier struct{}

func (discardNotifier) Send(ctx context.Context, event model.RenderEvent) error { return nil }

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(cfg, store, clk, rnd, logger)

	if cfg.CatalogPath != "" {
		if err := app.CatalogService.LoadFromFile(cfg.CatalogPath); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	return app, nil
}

func newStore(cfg Config, logger *slog.Logger) (storage.LedgerStore, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		if cfg.LedgerPath == "" {
			return nil, errors.New("LedgerPath required when StorageType is file")
		}
		return filestorage.New(cfg.LedgerPath)
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, store storage.LedgerStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = discardNotifier{}
	}

	// Zero-value service configs mean "use the defaults"
	if cfg.EconomyConfig.StartingBalance == 0 {
		cfg.EconomyConfig = economy.DefaultConfig()
	}
	if cfg.BattleConfig.ActionTimeout == 0 {
		cfg.BattleConfig = battle.DefaultConfig()
	}
	if cfg.SpawnerConfig.Period == 0 {
		cfg.SpawnerConfig = spawner.DefaultConfig()
	}

	slot := encounter.NewSlot()
	bus := chat.NewBus()

	channels := make([]model.ChannelID, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		channels[i] = model.ChannelID(ch)
	}
	resolver := chat.NewStaticResolver(channels)

	catalogService := catalog.New(logger, cfg.BossShips)
	ledgerService := ledger.New(store, clk, logger)
	economyController := economy.NewController(
		ledgerService, catalogService, slot, clk, rnd, logger, cfg.EconomyConfig)
	battleEngine := battle.NewEngine(
		ledgerService, catalogService, slot, bus, notifier, clk, rnd, logger, cfg.BattleConfig)
	spawnerService := spawner.New(
		catalogService, slot, resolver, notifier, clk, rnd, logger, cfg.SpawnerConfig)

	return &App{
		Store:             store,
		Clock:             clk,
		Random:            rnd,
		Slot:              slot,
		Bus:               bus,
		CatalogService:    catalogService,
		LedgerService:     ledgerService,
		EconomyController: economyController,
		BattleEngine:      battleEngine,
		SpawnerService:    spawnerService,
	}
}
