package model

import "errors"

// Common errors used across the application
var (
	// Participant errors
	ErrNotRegistered     = errors.New("participant is not registered")
	ErrAlreadyRegistered = errors.New("participant is already registered")

	// Roster errors
	ErrNoShipSelected  = errors.New("no ship selected")
	ErrAlreadySelected = errors.New("a ship has already been selected")
	ErrNotOwned        = errors.New("ship is not owned")
	ErrAlreadyOwned    = errors.New("ship is already owned")
	ErrNotAStarter     = errors.New("ship is not a free starter")

	// Economy errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOnCooldown        = errors.New("salvage claim is on cooldown")

	// Encounter errors
	ErrNoEncounterActive   = errors.New("no encounter is active")
	ErrEncounterActive     = errors.New("an encounter is already active")
	ErrChannelUnresolvable = errors.New("channel cannot be resolved")

	// Catalog errors
	ErrShipNotFound    = errors.New("ship not found in catalog")
	ErrDataUnavailable = errors.New("backing store is missing or malformed")
)
