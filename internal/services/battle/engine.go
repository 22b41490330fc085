package battle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/dependencies/clock"
	"github.com/skyfleet/starhunt/internal/dependencies/random"
	"github.com/skyfleet/starhunt/internal/encounter"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/catalog"
	"github.com/skyfleet/starhunt/internal/services/ledger"
)

// ErrBattleInProgress is returned when a challenger already has a
// battle running
var ErrBattleInProgress = errors.New("a battle is already in progress for this challenger")

// Config holds tunables for the battle engine
type Config struct {
	// ActionTimeout bounds the wait for each round's directive
	ActionTimeout time.Duration
	// RewardMax caps the victory currency grant (inclusive)
	RewardMax int
	// RetaliationMin floors the enemy's retaliation roll
	RetaliationMin int
	// DefendMin floors the per-round defense gain
	DefendMin int
}

// DefaultConfig returns the default battle configuration
func DefaultConfig() Config {
	return Config{
		ActionTimeout:  30 * time.Second,
		RewardMax:      50000,
		RetaliationMin: 10,
		DefendMin:      5,
	}
}

// Engine runs per-challenger battles against the active encounter. Each
// challenge is its own state machine; the only shared mutable state is
// the encounter slot, read once at challenge start and claimed once at
// termination.
type Engine struct {
	ledger     ledger.ServiceInterface
	catalog    catalog.ServiceInterface
	slot       *encounter.Slot
	directives chat.DirectiveSource
	notifier   chat.Notifier
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
	cfg        Config

	mu     sync.Mutex
	active map[model.ParticipantID]bool
}

// NewEngine creates a new battle engine
func NewEngine(
	ledgerService ledger.ServiceInterface,
	catalogService catalog.ServiceInterface,
	slot *encounter.Slot,
	directives chat.DirectiveSource,
	notifier chat.Notifier,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	return &Engine{
		ledger:     ledgerService,
		catalog:    catalogService,
		slot:       slot,
		directives: directives,
		notifier:   notifier,
		clock:      clk,
		random:     rnd,
		logger:     logger,
		cfg:        cfg,
		active:     make(map[model.ParticipantID]bool),
	}
}

// Engage runs a full battle for the challenger against the active
// encounter, blocking until a terminal state. Preconditions fail fast
// with no state advanced.
func (e *Engine) Engage(ctx context.Context, id model.ParticipantID) (*model.BattleReport, error) {
	rec, err := e.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.HasFlagship() {
		return nil, model.ErrNoShipSelected
	}

	enc, err := e.slot.Peek()
	if err != nil {
		return nil, err
	}

	playerShip, err := e.catalog.Lookup(string(rec.Flagship))
	if err != nil {
		return nil, err
	}

	if !e.begin(id) {
		return nil, ErrBattleInProgress
	}
	defer e.end(id)

	report := &model.BattleReport{
		ID:         model.BattleID(uuid.NewString()),
		Challenger: id,
		PlayerShip: playerShip.Name,
		EnemyShip:  enc.Ship.Name,
	}

	e.logger.Info("battle started",
		slog.String("battle_id", string(report.ID)),
		slog.String("challenger", string(id)),
		slog.String("player_ship", string(playerShip.Name)),
		slog.String("enemy_ship", string(enc.Ship.Name)),
	)

	state := battleState{
		playerHP: playerShip.HP(),
		defense:  playerShip.DefenseValue(),
		enemyHP:  enc.Ship.HP(),
	}

	for round := 1; ; round++ {
		e.emit(ctx, promptEvent(id, enc, round, state))

		action := e.awaitAction(ctx, id)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if action == model.ActionFlee {
			report.Outcome = model.OutcomeFled
			report.Rounds = append(report.Rounds, model.BattleRound{
				Number:   round,
				Action:   model.ActionFlee,
				PlayerHP: state.playerHP,
				EnemyHP:  state.enemyHP,
			})
			break
		}

		result := e.resolveRound(round, action, playerShip, &enc.Ship, &state)
		report.Rounds = append(report.Rounds, result)
		e.emit(ctx, roundEvent(id, enc, result))

		if state.enemyHP <= 0 {
			report.Outcome = model.OutcomeVictory
			break
		}
		if state.playerHP <= 0 {
			report.Outcome = model.OutcomeDefeat
			break
		}
	}

	if err := e.conclude(ctx, id, enc, report); err != nil {
		return nil, err
	}

	e.emit(ctx, outcomeEvent(id, enc, report))

	e.logger.Info("battle finished",
		slog.String("battle_id", string(report.ID)),
		slog.String("challenger", string(id)),
		slog.String("outcome", string(report.Outcome)),
		slog.Int("rounds", len(report.Rounds)),
	)
	return report, nil
}

// battleState is the mutable per-challenge combat state
type battleState struct {
	playerHP int
	defense  int
	enemyHP  int
}

// awaitAction blocks for the challenger's next directive, bounded by
// the action timeout. A timeout or an unparseable directive degrades to
// no action for this round only; the battle continues.
func (e *Engine) awaitAction(ctx context.Context, id model.ParticipantID) model.BattleAction {
	text, err := e.directives.Await(ctx, id, e.cfg.ActionTimeout)
	if err != nil {
		if errors.Is(err, chat.ErrDirectiveTimeout) {
			e.logger.Info("battle action timed out", slog.String("challenger", string(id)))
		}
		return model.ActionNone
	}
	return parseAction(text)
}

// parseAction maps a raw directive to a battle action. Anything
// unrecognized counts as no action.
func parseAction(text string) model.BattleAction {
	switch model.BattleAction(model.NormalizeShipName(text)) {
	case model.ActionAttack:
		return model.ActionAttack
	case model.ActionDefend:
		return model.ActionDefend
	case model.ActionFlee:
		return model.ActionFlee
	default:
		return model.ActionNone
	}
}

// resolveRound applies the player action, then the enemy's retaliation
// when it survives
func (e *Engine) resolveRound(round int, action model.BattleAction, player, enemy *model.ShipDefinition, state *battleState) model.BattleRound {
	result := model.BattleRound{
		Number: round,
		Action: action,
	}

	switch action {
	case model.ActionAttack:
		weapon := player.Weapons[e.random.Intn(len(player.Weapons))]
		result.WeaponUsed = weapon.Name
		result.DamageDealt = weapon.Damage
		state.enemyHP -= weapon.Damage
		// Module choice is flavor attribution only
		if len(enemy.Modules) > 0 {
			result.TargetModule = enemy.Modules[e.random.Intn(len(enemy.Modules))].Name
		}
	case model.ActionDefend:
		gain := e.random.Between(e.cfg.DefendMin, state.defense)
		state.defense += gain
		result.DefenseGained = gain
	}

	// Enemy retaliates with its full arsenal whenever it is still afloat
	if state.enemyHP > 0 {
		roll := e.random.Between(e.cfg.RetaliationMin, enemy.AttackValue())
		damage := roll - state.defense
		if damage < 1 {
			damage = 1
		}
		state.playerHP -= damage
		result.DamageTaken = damage
	}

	result.PlayerHP = state.playerHP
	result.EnemyHP = state.enemyHP
	return result
}

// conclude applies the terminal effects: victory claims the encounter
// slot before the ledger is touched so two battles never capture the
// same object twice
func (e *Engine) conclude(ctx context.Context, id model.ParticipantID, enc *model.Encounter, report *model.BattleReport) error {
	switch report.Outcome {
	case model.OutcomeFled:
		// Encounter remains available for others
		return nil

	case model.OutcomeDefeat:
		_, err := e.ledger.Mutate(ctx, id, func(p *model.Participant) error {
			p.Losses++
			return nil
		})
		return err

	case model.OutcomeVictory:
		if !e.slot.Resolve(enc.ID) {
			// Another challenger already resolved this encounter
			return model.ErrNoEncounterActive
		}

		reward := e.random.Between(0, e.cfg.RewardMax)
		_, err := e.ledger.Mutate(ctx, id, func(p *model.Participant) error {
			p.Wins++
			p.AddShip(enc.Ship.Name)
			p.Balance += reward
			return nil
		})
		if err != nil {
			return err
		}
		report.Reward = reward
		report.Captured = true
		return nil

	default:
		return fmt.Errorf("unknown battle outcome %q", report.Outcome)
	}
}

// begin marks a challenger as in battle; false when one is running
func (e *Engine) begin(id model.ParticipantID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active[id] {
		return false
	}
	e.active[id] = true
	return true
}

func (e *Engine) end(id model.ParticipantID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, id)
}

// emit sends a render event, logging delivery failures rather than
// failing the battle
func (e *Engine) emit(ctx context.Context, event model.RenderEvent) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Send(ctx, event); err != nil {
		e.logger.Warn("render event delivery failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}

// Interface for dependency injection
type EngineInterface interface {
	Engage(ctx context.Context, id model.ParticipantID) (*model.BattleReport, error)
}

var _ EngineInterface = (*Engine)(nil)
