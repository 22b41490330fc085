package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/skyfleet/starhunt/internal/model"
)

// Service provides the immutable ship catalog. Definitions are loaded
// once and are read-only at runtime; reloading requires a process
// restart.
type Service struct {
	logger *slog.Logger

	mu      sync.RWMutex
	ships   []model.ShipDefinition
	byName  map[string]*model.ShipDefinition
	bosses  map[string]bool
	loaded  bool
}

// New creates a new catalog service. bossNames lists definitions that
// the spawner must never select.
func New(logger *slog.Logger, bossNames []string) *Service {
	bosses := make(map[string]bool, len(bossNames))
	for _, name := range bossNames {
		bosses[model.NormalizeShipName(name)] = true
	}
	return &Service{
		logger: logger,
		byName: make(map[string]*model.ShipDefinition),
		bosses: bosses,
	}
}

// LoadFromFile loads ship definitions from a JSON file. Any missing or
// malformed store is model.ErrDataUnavailable; callers treat that as
// fatal at process start.
func (s *Service) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDataUnavailable, err)
	}

	var ships []model.ShipDefinition
	if err := json.Unmarshal(data, &ships); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDataUnavailable, err)
	}

	if err := s.loadShips(ships); err != nil {
		return err
	}

	s.logger.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("ship_count", len(ships)),
	)
	return nil
}

// LoadShips directly loads a slice of definitions (useful for testing)
func (s *Service) LoadShips(ships []model.ShipDefinition) error {
	return s.loadShips(ships)
}

func (s *Service) loadShips(ships []model.ShipDefinition) error {
	for i := range ships {
		if err := validate(&ships[i]); err != nil {
			return fmt.Errorf("%w: ship %q: %v", model.ErrDataUnavailable, ships[i].Name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ships = ships
	s.byName = make(map[string]*model.ShipDefinition, len(ships))
	for i := range s.ships {
		s.byName[model.NormalizeShipName(string(s.ships[i].Name))] = &s.ships[i]
	}
	s.loaded = true
	return nil
}

// validate enforces the catalog invariants: a Price stat exists and is
// non-negative, and combat-eligible ships carry at least one weapon
func validate(d *model.ShipDefinition) error {
	if d.Name == "" {
		return fmt.Errorf("missing name")
	}
	if price, ok := d.Stats[model.StatPrice]; ok && price < 0 {
		return fmt.Errorf("negative price %d", price)
	}
	if len(d.Weapons) == 0 {
		return fmt.Errorf("no weapons")
	}
	return nil
}

// Lookup returns the definition with the given name, matched
// case-insensitively. Absence is model.ErrShipNotFound.
func (s *Service) Lookup(name string) (*model.ShipDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.byName[model.NormalizeShipName(name)]
	if !ok {
		return nil, model.ErrShipNotFound
	}
	return def, nil
}

// All returns every loaded definition
func (s *Service) All() []model.ShipDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ShipDefinition, len(s.ships))
	copy(out, s.ships)
	return out
}

// Spawnable returns the definitions the spawner may select, excluding
// the boss tier
func (s *Service) Spawnable() []model.ShipDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ShipDefinition
	for _, d := range s.ships {
		if !s.bosses[model.NormalizeShipName(string(d.Name))] {
			out = append(out, d)
		}
	}
	return out
}

// IsLoaded returns whether the catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromFile(path string) error
	LoadShips(ships []model.ShipDefinition) error
	Lookup(name string) (*model.ShipDefinition, error)
	All() []model.ShipDefinition
	Spawnable() []model.ShipDefinition
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)
