package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Participant:
		o.printParticipant(v)
	case Ship:
		o.printShip(v)
	case []Ship:
		o.printShipList(v)
	case Encounter:
		o.printEncounter(v)
	case BattleReport:
		o.printBattleReport(v)
	case ClaimResult:
		o.printClaimResult(v)
	case CaptureResult:
		o.printCaptureResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Participant response type (matches API)
type Participant struct {
	ID        string    `json:"id"`
	Balance   int       `json:"balance"`
	Ships     []string  `json:"ships"`
	Flagship  string    `json:"flagship,omitempty"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	LastClaim time.Time `json:"last_claim"`
	CreatedAt time.Time `json:"created_at"`
}

// Ship response type
type Ship struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Stats    map[string]int `json:"stats"`
	Weapons  []Weapon       `json:"weapons"`
}

// Weapon response type
type Weapon struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// Encounter response type
type Encounter struct {
	ID        string    `json:"id"`
	Ship      Ship      `json:"ship"`
	Channel   string    `json:"channel"`
	SpawnedAt time.Time `json:"spawned_at"`
}

// BattleRound response type
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

// BattleReport response type
type BattleReport struct {
	ID         string        `json:"id"`
	PlayerShip string        `json:"player_ship"`
	EnemyShip  string        `json:"enemy_ship"`
	Outcome    string        `json:"outcome"`
	Rounds     []BattleRound `json:"rounds"`
	Reward     int           `json:"reward,omitempty"`
	Captured   bool          `json:"captured,omitempty"`
}

// ClaimResult response type
type ClaimResult struct {
	Amount      int         `json:"amount"`
	Participant Participant `json:"participant"`
}

// CaptureResult response type
type CaptureResult struct {
	Encounter   Encounter   `json:"encounter"`
	Participant Participant `json:"participant"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printParticipant(p Participant) {
	fmt.Printf("Participant: %s\n", p.ID)
	fmt.Printf("Balance: %d credits\n", p.Balance)
	if p.Flagship != "" {
		fmt.Printf("Flagship: %s\n", p.Flagship)
	}
	fmt.Printf("Record: %d wins / %d losses\n", p.Wins, p.Losses)
	if len(p.Ships) > 0 {
		fmt.Printf("Roster (%d):\n", len(p.Ships))
		for _, ship := range p.Ships {
			marker := ""
			if ship == p.Flagship {
				marker = " [flagship]"
			}
			fmt.Printf("  - %s%s\n", ship, marker)
		}
	}
}

func (o *Output) printShip(ship Ship) {
	fmt.Printf("%s (%s)\n", ship.Name, ship.Category)
	for stat, value := range ship.Stats {
		fmt.Printf("  %s: %d\n", stat, value)
	}
	for _, w := range ship.Weapons {
		fmt.Printf("  Weapon: %s (%d damage)\n", w.Name, w.Damage)
	}
}

func (o *Output) printShipList(ships []Ship) {
	fmt.Printf("Catalog (%d ships):\n", len(ships))
	for _, ship := range ships {
		price := ship.Stats["Price"]
		priceStr := "free starter"
		if price > 0 {
			priceStr = fmt.Sprintf("%d credits", price)
		}
		fmt.Printf("  - %s (%s) - %s\n", ship.Name, ship.Category, priceStr)
	}
}

func (o *Output) printEncounter(e Encounter) {
	fmt.Printf("Encounter: %s\n", e.ID)
	fmt.Printf("Channel: %s\n", e.Channel)
	fmt.Printf("Spawned: %s\n", e.SpawnedAt.Format(time.RFC3339))
	o.printShip(e.Ship)
}

func (o *Output) printBattleReport(r BattleReport) {
	fmt.Printf("Battle: %s vs %s\n", r.PlayerShip, r.EnemyShip)
	for _, round := range r.Rounds {
		parts := []string{fmt.Sprintf("round %d: %s", round.Number, round.Action)}
		if round.DamageDealt > 0 {
			parts = append(parts, fmt.Sprintf("dealt %d", round.DamageDealt))
		}
		if round.DefenseGained > 0 {
			parts = append(parts, fmt.Sprintf("defense +%d", round.DefenseGained))
		}
		if round.DamageTaken > 0 {
			parts = append(parts, fmt.Sprintf("took %d", round.DamageTaken))
		}
		parts = append(parts, fmt.Sprintf("HP %d/%d", round.PlayerHP, round.EnemyHP))
		fmt.Printf("  %s\n", strings.Join(parts, ", "))
	}
	fmt.Printf("Outcome: %s\n", r.Outcome)
	if r.Reward > 0 {
		fmt.Printf("Reward: %d credits\n", r.Reward)
	}
	if r.Captured {
		fmt.Printf("Captured: %s\n", r.EnemyShip)
	}
}

func (o *Output) printClaimResult(c ClaimResult) {
	fmt.Printf("Claimed %d credits\n", c.Amount)
	fmt.Printf("Balance: %d credits\n", c.Participant.Balance)
}

func (o *Output) printCaptureResult(c CaptureResult) {
	fmt.Printf("Captured %s from encounter %s\n", c.Encounter.Ship.Name, c.Encounter.ID)
	fmt.Printf("Roster size: %d\n", len(c.Participant.Ships))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
