package encounter

import (
	"sync"

	"github.com/skyfleet/starhunt/internal/model"
)

// Slot holds the single active encounter for the process. All access
// goes through check-and-set operations; at most one encounter is
// present at any time.
type Slot struct {
	mu      sync.Mutex
	current *model.Encounter
}

// NewSlot creates an empty encounter slot
func NewSlot() *Slot {
	return &Slot{}
}

// Occupied reports whether an unclaimed encounter is present
func (s *Slot) Occupied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Peek returns a copy of the active encounter, or
// model.ErrNoEncounterActive when the slot is empty
func (s *Slot) Peek() (*model.Encounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, model.ErrNoEncounterActive
	}
	enc := *s.current
	return &enc, nil
}

// Publish places an encounter in the slot. Fails with
// model.ErrEncounterActive if one is already present.
func (s *Slot) Publish(enc *model.Encounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return model.ErrEncounterActive
	}
	cp := *enc
	s.current = &cp
	return nil
}

// Resolve clears the slot only if it still holds the encounter with the
// given id, and reports whether this caller won the claim. Two battles
// concluding against the same encounter resolve it exactly once.
func (s *Slot) Resolve(id model.EncounterID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	return true
}

// Take removes and returns the active encounter regardless of id, for
// the direct capture command. Empty slot is model.ErrNoEncounterActive.
func (s *Slot) Take() (*model.Encounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, model.ErrNoEncounterActive
	}
	enc := s.current
	s.current = nil
	return enc, nil
}
