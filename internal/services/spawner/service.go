package spawner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/dependencies/clock"
	"github.com/skyfleet/starhunt/internal/dependencies/random"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/catalog"
)

// Config holds tunables for the spawn scheduler
type Config struct {
	// Period is the spawn tick interval
	Period time.Duration
	// JitterMax bounds the random delay applied before committing to a
	// spawn; the slot is re-checked afterwards to close the race with a
	// concurrent capture
	JitterMax time.Duration
}

// DefaultConfig returns the default spawner configuration
func DefaultConfig() Config {
	return Config{
		Period:    60 * time.Second,
		JitterMax: time.Second,
	}
}

// Service periodically spawns encounters into eligible channels,
// honoring the single-active-encounter invariant
type Service struct {
	catalog  catalog.ServiceInterface
	slot     *encounter.Slot
	resolver chat.ChannelResolver
	notifier chat.Notifier
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	cfg      Config

	channels []model.ChannelID

	// sleep is swappable for tests
	sleep func(ctx context.Context, d time.Duration)
}

// New creates a new spawner service
func New(
	catalogService catalog.ServiceInterface,
	slot *encounter.Slot,
	resolver chat.ChannelResolver,
	notifier chat.Notifier,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	cfg Config,
) *Service {
	return &Service{
		catalog:  catalogService,
		slot:     slot,
		resolver: resolver,
		notifier: notifier,
		clock:    clk,
		random:   rnd,
		logger:   logger,
		cfg:      cfg,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// arm computes the eligible channel set once
func (s *Service) arm(ctx context.Context) error {
	if len(s.channels) > 0 {
		return nil
	}
	channels, err := s.resolver.Eligible(ctx)
	if err != nil {
		return err
	}
	s.channels = channels
	return nil
}

// Run computes the eligible channel set once, then ticks until the
// context is cancelled. With no eligible channels the scheduler never
// arms.
func (s *Service) Run(ctx context.Context) error {
	if err := s.arm(ctx); err != nil {
		return err
	}
	if len(s.channels) == 0 {
		s.logger.Warn("no eligible channels; spawner will not arm")
		return nil
	}

	s.logger.Info("spawner armed",
		slog.Int("channel_count", len(s.channels)),
		slog.Duration("period", s.cfg.Period),
	)

	ticker := time.NewTicker(s.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SpawnTick(ctx)
		case <-ctx.Done():
			s.logger.Info("spawner stopped")
			return ctx.Err()
		}
	}
}

// SpawnTick runs one spawn pass: skip when an encounter is present,
// jitter, re-check, then select and publish. Also reachable from the
// admin force-spawn endpoint.
func (s *Service) SpawnTick(ctx context.Context) {
	if s.slot.Occupied() {
		return
	}

	if s.cfg.JitterMax > 0 {
		jitter := time.Duration(s.random.Intn(int(s.cfg.JitterMax) + 1))
		s.sleep(ctx, jitter)
	}
	if ctx.Err() != nil {
		return
	}

	// A capture may have raced during the jitter
	if s.slot.Occupied() {
		return
	}

	if err := s.arm(ctx); err != nil {
		s.logger.Error("channel discovery failed", slog.String("error", err.Error()))
		return
	}
	if len(s.channels) == 0 {
		return
	}

	spawnable := s.catalog.Spawnable()
	if len(spawnable) == 0 {
		s.logger.Warn("no spawnable ships in catalog")
		return
	}

	ship := spawnable[s.random.Intn(len(spawnable))]
	channel := s.channels[s.random.Intn(len(s.channels))]

	// Do not spawn into a void
	if err := s.resolver.Resolve(ctx, channel); err != nil {
		s.logger.Error("spawn channel unresolvable",
			slog.String("channel", string(channel)),
			slog.String("error", err.Error()),
		)
		return
	}

	enc := &model.Encounter{
		ID:        model.EncounterID(uuid.NewString()),
		Ship:      ship,
		Channel:   channel,
		SpawnedAt: s.clock.Now(),
	}

	if err := s.slot.Publish(enc); err != nil {
		// Lost the race after the re-check; the invariant holds
		return
	}

	s.logger.Info("encounter spawned",
		slog.String("encounter_id", string(enc.ID)),
		slog.String("ship", string(ship.Name)),
		slog.String("channel", string(channel)),
	)

	if err := s.notifier.Send(ctx, model.SpawnEvent(enc)); err != nil {
		s.logger.Warn("spawn announcement failed",
			slog.String("encounter_id", string(enc.ID)),
			slog.String("error", err.Error()),
		)
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Run(ctx context.Context) error
	SpawnTick(ctx context.Context)
}

var _ ServiceInterface = (*Service)(nil)
