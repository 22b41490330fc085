package model

import "time"

// EncounterID uniquely identifies one spawned encounter
type EncounterID string

// ChannelID references a chat channel the core can publish into
type ChannelID string

// Encounter is the currently spawned, capturable ship in a channel.
// At most one encounter is present per process at any time.
type Encounter struct {
	ID        EncounterID    `json:"id"`
	Ship      ShipDefinition `json:"ship"`
	Channel   ChannelID      `json:"channel"`
	SpawnedAt time.Time      `json:"spawned_at"`
}
