package model

import "strings"

// ShipName identifies a ship definition in the catalog
type ShipName string

// Weapon is a named damage source on a ship
type Weapon struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// Module is a named fixture on a ship. Modules are flavor only and have
// no numeric effect on battle.
type Module struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Defense is a named defensive system on a ship
type Defense struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Stat names every catalog entry must carry
const (
	StatHP    = "HP"
	StatPrice = "Price"
)

// ShipDefinition is an immutable catalog entry describing one ship class
type ShipDefinition struct {
	Name     ShipName       `json:"name"`
	Category string         `json:"category"`
	Stats    map[string]int `json:"stats"`
	Weapons  []Weapon       `json:"weapons"`
	Modules  []Module       `json:"modules"`
	Defenses []Defense      `json:"defenses"`
	Image    string         `json:"image,omitempty"`
}

// HP returns the ship's HP stat, or 0 when absent
func (d *ShipDefinition) HP() int {
	return d.Stats[StatHP]
}

// Price returns the ship's Price stat, or 0 when absent
func (d *ShipDefinition) Price() int {
	return d.Stats[StatPrice]
}

// AttackValue is the sum of all weapon damage values. It drives the
// enemy's aggregate retaliation and is reported in summaries.
func (d *ShipDefinition) AttackValue() int {
	total := 0
	for _, w := range d.Weapons {
		total += w.Damage
	}
	return total
}

// DefenseValue is the value of the first defense entry, or 0 when the
// ship carries no defenses
func (d *ShipDefinition) DefenseValue() int {
	if len(d.Defenses) == 0 {
		return 0
	}
	return d.Defenses[0].Value
}

// NormalizeShipName folds a ship name for case-insensitive matching
func NormalizeShipName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
