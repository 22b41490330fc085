package response

import (
	"time"

	"github.com/skyfleet/starhunt/internal/model"
)

// Participant represents a ledger record in API responses
type Participant struct {
	ID        string    `json:"id"`
	Balance   int       `json:"balance"`
	Ships     []string  `json:"ships"`
	Flagship  string    `json:"flagship,omitempty"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	LastClaim time.Time `json:"last_claim,omitzero"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantFromModel converts a model.Participant to a response Participant
func ParticipantFromModel(p *model.Participant) Participant {
	ships := make([]string, len(p.OwnedShips))
	for i, s := range p.OwnedShips {
		ships[i] = string(s)
	}
	return Participant{
		ID:        string(p.ID),
		Balance:   p.Balance,
		Ships:     ships,
		Flagship:  string(p.Flagship),
		Wins:      p.Wins,
		Losses:    p.Losses,
		LastClaim: p.LastClaim,
		CreatedAt: p.CreatedAt,
	}
}

// Weapon represents a ship weapon
type Weapon struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// Ship represents a catalog definition in API responses
type Ship struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Stats    map[string]int `json:"stats"`
	Weapons  []Weapon       `json:"weapons"`
	Image    string         `json:"image,omitempty"`
}

// ShipFromModel converts a model.ShipDefinition to a response Ship
func ShipFromModel(d *model.ShipDefinition) Ship {
	weapons := make([]Weapon, len(d.Weapons))
	for i, w := range d.Weapons {
		weapons[i] = Weapon{Name: w.Name, Damage: w.Damage}
	}
	return Ship{
		Name:     string(d.Name),
		Category: d.Category,
		Stats:    d.Stats,
		Weapons:  weapons,
		Image:    d.Image,
	}
}

// Encounter represents the active encounter
type Encounter struct {
	ID        string    `json:"id"`
	Ship      Ship      `json:"ship"`
	Channel   string    `json:"channel"`
	SpawnedAt time.Time `json:"spawned_at"`
}

// EncounterFromModel converts a model.Encounter
func EncounterFromModel(e *model.Encounter) Encounter {
	return Encounter{
		ID:        string(e.ID),
		Ship:      ShipFromModel(&e.Ship),
		Channel:   string(e.Channel),
		SpawnedAt: e.SpawnedAt,
	}
}

// BattleRound represents one resolved round
type BattleRound struct {
	Number        int    `json:"number"`
	Action        string `json:"action"`
	WeaponUsed    string `json:"weapon_used,omitempty"`
	TargetModule  string `json:"target_module,omitempty"`
	DamageDealt   int    `json:"damage_dealt"`
	DefenseGained int    `json:"defense_gained"`
	DamageTaken   int    `json:"damage_taken"`
	PlayerHP      int    `json:"player_hp"`
	EnemyHP       int    `json:"enemy_hp"`
}

// BattleReport represents a concluded battle
type BattleReport struct {
	ID         string        `json:"id"`
	Challenger string        `json:"challenger"`
	PlayerShip string        `json:"player_ship"`
	EnemyShip  string        `json:"enemy_ship"`
	Outcome    string        `json:"outcome"`
	Rounds     []BattleRound `json:"rounds"`
	Reward     int           `json:"reward,omitempty"`
	Captured   bool          `json:"captured,omitempty"`
}

// BattleReportFromModel converts a model.BattleReport
func BattleReportFromModel(r *model.BattleReport) BattleReport {
	rounds := make([]BattleRound, len(r.Rounds))
	for i, round := range r.Rounds {
		rounds[i] = BattleRound{
			Number:        round.Number,
			Action:        string(round.Action),
			WeaponUsed:    round.WeaponUsed,
			TargetModule:  round.TargetModule,
			DamageDealt:   round.DamageDealt,
			DefenseGained: round.DefenseGained,
			DamageTaken:   round.DamageTaken,
			PlayerHP:      round.PlayerHP,
			EnemyHP:       round.EnemyHP,
		}
	}
	return BattleReport{
		ID:         string(r.ID),
		Challenger: string(r.Challenger),
		PlayerShip: string(r.PlayerShip),
		EnemyShip:  string(r.EnemyShip),
		Outcome:    string(r.Outcome),
		Rounds:     rounds,
		Reward:     r.Reward,
		Captured:   r.Captured,
	}
}

// ClaimResponse is the response for a salvage claim
type ClaimResponse struct {
	Amount      int         `json:"amount"`
	Participant Participant `json:"participant"`
}

// CaptureResponse is the response for a direct capture
type CaptureResponse struct {
	Encounter   Encounter   `json:"encounter"`
	Participant Participant `json:"participant"`
}

// DirectiveResponse acknowledges a submitted directive
type DirectiveResponse struct {
	Accepted bool `json:"accepted"`
}
