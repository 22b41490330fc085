package economy

import (
	"context"
	"log/slog"
	"time"

	"github.com/skyfleet/starhunt/internal/dependencies/clock"
	"github.com/skyfleet/starhunt/internal/dependencies/random"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/ledger"
)

// Config holds tunables for the economy controller
type Config struct {
	// StartingBalance is granted on registration
	StartingBalance int
	// ClaimCooldown gates the salvage claim command
	ClaimCooldown time.Duration
	// ClaimMin and ClaimMax bound the salvage claim grant (inclusive)
	ClaimMin int
	ClaimMax int
}

// DefaultConfig returns the default economy configuration
func DefaultConfig() Config {
	return Config{
		StartingBalance: 30000,
		ClaimCooldown:   time.Hour,
		ClaimMin:        500,
		ClaimMax:        5000,
	}
}

// Controller implements the economy-adjacent command surface:
// registration, roster and balance views, starter selection, purchase,
// flagship selection, salvage claims and direct captures.
type Controller struct {
	ledger  ledger.ServiceInterface
	catalog catalog.ServiceInterface
	slot    *encounter.Slot
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	cfg     Config
}

// NewController creates a new economy controller
func NewController(
	ledgerService ledger.ServiceInterface,
	catalogService catalog.ServiceInterface,
	slot *encounter.Slot,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	return &Controller{
		ledger:  ledgerService,
		catalog: catalogService,
		slot:    slot,
		clock:   clk,
		random:  rnd,
		logger:  logger,
		cfg:     cfg,
	}
}

// Register creates a ledger record with the starting balance
func (c *Controller) Register(ctx context.Context, id model.ParticipantID) (*model.Participant, error) {
	rec, err := c.ledger.Register(ctx, id, c.cfg.StartingBalance)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the participant's record
func (c *Controller) Get(ctx context.Context, id model.ParticipantID) (*model.Participant, error) {
	return c.ledger.Get(ctx, id)
}

// SelectStarter grants a free ship and makes it the flagship in one
// mutation. The flagship choice is one-time; only ships with no price
// qualify as starters.
func (c *Controller) SelectStarter(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error) {
	def, err := c.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if def.Price() > 0 {
		return nil, model.ErrNotAStarter
	}

	rec, err := c.ledger.Mutate(ctx, id, func(p *model.Participant) error {
		if p.HasFlagship() {
			return model.ErrAlreadySelected
		}
		p.AddShip(def.Name)
		p.Flagship = def.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("starter selected",
		slog.String("participant_id", string(id)),
		slog.String("ship", string(def.Name)),
	)
	return rec, nil
}

// SelectFlagship makes an owned ship the flagship. The choice is
// one-time: once set it never changes.
func (c *Controller) SelectFlagship(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error) {
	def, err := c.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	return c.ledger.Mutate(ctx, id, func(p *model.Participant) error {
		if p.HasFlagship() {
			return model.ErrAlreadySelected
		}
		if !p.Owns(def.Name) {
			return model.ErrNotOwned
		}
		p.Flagship = def.Name
		return nil
	})
}

// Purchase debits the ship's price and adds it to the roster in one
// mutation
func (c *Controller) Purchase(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error) {
	def, err := c.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	price := def.Price()

	rec, err := c.ledger.Mutate(ctx, id, func(p *model.Participant) error {
		if p.Owns(def.Name) {
			return model.ErrAlreadyOwned
		}
		if p.Balance < price {
			return model.ErrInsufficientFunds
		}
		p.Balance -= price
		p.AddShip(def.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("ship purchased",
		slog.String("participant_id", string(id)),
		slog.String("ship", string(def.Name)),
		slog.Int("price", price),
	)
	return rec, nil
}

// Claim grants a cooldown-gated salvage payout. The grant amount and
// the timestamp update land in the same ledger mutation.
func (c *Controller) Claim(ctx context.Context, id model.ParticipantID) (int, *model.Participant, error) {
	now := c.clock.Now()
	amount := c.random.Between(c.cfg.ClaimMin, c.cfg.ClaimMax)

	rec, err := c.ledger.Mutate(ctx, id, func(p *model.Participant) error {
		if !p.LastClaim.IsZero() && now.Sub(p.LastClaim) < c.cfg.ClaimCooldown {
			return model.ErrOnCooldown
		}
		p.Balance += amount
		p.LastClaim = now
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	c.logger.Info("salvage claimed",
		slog.String("participant_id", string(id)),
		slog.Int("amount", amount),
	)
	return amount, rec, nil
}

// Capture claims the active encounter directly into the roster with no
// battle: no reward, no win counted, and the slot is cleared
func (c *Controller) Capture(ctx context.Context, id model.ParticipantID) (*model.Encounter, *model.Participant, error) {
	// Fail fast before touching the slot
	if _, err := c.ledger.Get(ctx, id); err != nil {
		return nil, nil, err
	}

	enc, err := c.slot.Take()
	if err != nil {
		return nil, nil, err
	}

	rec, err := c.ledger.Mutate(ctx, id, func(p *model.Participant) error {
		p.AddShip(enc.Ship.Name)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("encounter captured",
		slog.String("participant_id", string(id)),
		slog.String("ship", string(enc.Ship.Name)),
	)
	return enc, rec, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Register(ctx context.Context, id model.ParticipantID) (*model.Participant, error)
	Get(ctx context.Context, id model.ParticipantID) (*model.Participant, error)
	SelectStarter(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error)
	SelectFlagship(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error)
	Purchase(ctx context.Context, id model.ParticipantID, name string) (*model.Participant, error)
	Claim(ctx context.Context, id model.ParticipantID) (int, *model.Participant, error)
	Capture(ctx context.Context, id model.ParticipantID) (*model.Encounter, *model.Participant, error)
}

var _ ControllerInterface = (*Controller)(nil)
