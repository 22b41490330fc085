package model

// BattleID uniquely identifies one battle instance
type BattleID string

// BattleAction is a player-chosen action for one round
type BattleAction string

const (
	ActionAttack BattleAction = "attack"
	ActionDefend BattleAction = "defend"
	ActionFlee   BattleAction = "flee"

	// ActionNone is recorded when the challenger supplied no usable
	// directive within the round's timeout
	ActionNone BattleAction = "none"
)

// BattleOutcome is the terminal state of a battle
type BattleOutcome string

const (
	OutcomeVictory BattleOutcome = "victory"
	OutcomeDefeat  BattleOutcome = "defeat"
	OutcomeFled    BattleOutcome = "fled"
)

// BattleRound records what happened in a single resolved round
type BattleRound struct {
	Number        int          `json:"number"`
	Action        BattleAction `json:"action"`
	WeaponUsed    string       `json:"weapon_used,omitempty"`
	TargetModule  string       `json:"target_module,omitempty"`
	DamageDealt   int          `json:"damage_dealt"`
	DefenseGained int          `json:"defense_gained"`
	DamageTaken   int          `json:"damage_taken"`
	PlayerHP      int          `json:"player_hp"`
	EnemyHP       int          `json:"enemy_hp"`
}

// BattleReport is the structured result of a finished battle, carrying
// the per-round transcript for the adapter to render
type BattleReport struct {
	ID          BattleID      `json:"id"`
	Challenger  ParticipantID `json:"challenger"`
	PlayerShip  ShipName      `json:"player_ship"`
	EnemyShip   ShipName      `json:"enemy_ship"`
	Outcome     BattleOutcome `json:"outcome"`
	Rounds      []BattleRound `json:"rounds"`
	Reward      int           `json:"reward"`
	Captured    bool          `json:"captured"`
}
