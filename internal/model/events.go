package model

import "fmt"

// EventField is one labelled value on a render event
type EventField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RenderEvent is the structured message the core hands to the chat
// adapter. The core never formats rich visuals itself; the adapter
// turns these tuples into platform-specific cards.
type RenderEvent struct {
	Kind        string        `json:"kind"`
	Channel     ChannelID     `json:"channel,omitempty"`
	Participant ParticipantID `json:"participant,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Fields      []EventField  `json:"fields,omitempty"`
	Image       string        `json:"image,omitempty"`
}

// Event kinds emitted by the core
const (
	EventEncounterSpawned = "encounter_spawned"
	EventBattlePrompt     = "battle_prompt"
	EventBattleRound      = "battle_round"
	EventBattleOutcome    = "battle_outcome"
)

// SpawnEvent builds the stat-block announcement for a spawned encounter
func SpawnEvent(enc *Encounter) RenderEvent {
	fields := []EventField{
		{Name: "Class", Value: enc.Ship.Category},
		{Name: "HP", Value: fmt.Sprintf("%d", enc.Ship.HP())},
		{Name: "Attack", Value: fmt.Sprintf("%d", enc.Ship.AttackValue())},
		{Name: "Defense", Value: fmt.Sprintf("%d", enc.Ship.DefenseValue())},
	}
	for _, w := range enc.Ship.Weapons {
		fields = append(fields, EventField{Name: "Weapon: " + w.Name, Value: fmt.Sprintf("%d", w.Damage)})
	}
	for _, m := range enc.Ship.Modules {
		fields = append(fields, EventField{Name: "Module: " + m.Name, Value: fmt.Sprintf("%d", m.Value)})
	}
	return RenderEvent{
		Kind:        EventEncounterSpawned,
		Channel:     enc.Channel,
		Title:       fmt.Sprintf("Hostile %s sighted!", enc.Ship.Name),
		Description: "An enemy ship has appeared. Engage it before someone else does.",
		Fields:      fields,
		Image:       enc.Ship.Image,
	}
}
