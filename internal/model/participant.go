package model

import "time"

// ParticipantID is the chat-platform identity of a participant
type ParticipantID string

// Participant is one ledger record. Created on first registration,
// never deleted.
type Participant struct {
	ID         ParticipantID `json:"id"`
	Balance    int           `json:"balance"`
	OwnedShips []ShipName    `json:"owned_ships"`
	Flagship   ShipName      `json:"flagship,omitempty"`
	Wins       int           `json:"wins"`
	Losses     int           `json:"losses"`
	LastClaim  time.Time     `json:"last_claim,omitzero"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Owns reports whether the participant's roster contains the ship,
// matched case-insensitively
func (p *Participant) Owns(name ShipName) bool {
	want := NormalizeShipName(string(name))
	for _, owned := range p.OwnedShips {
		if NormalizeShipName(string(owned)) == want {
			return true
		}
	}
	return false
}

// AddShip appends a ship to the roster if not already present.
// Rosters only grow.
func (p *Participant) AddShip(name ShipName) {
	if !p.Owns(name) {
		p.OwnedShips = append(p.OwnedShips, name)
	}
}

// HasFlagship reports whether the one-time flagship choice has been made
func (p *Participant) HasFlagship() bool {
	return p.Flagship != ""
}

// LedgerDocument is the whole persisted ledger: one record per
// participant, replaced as a unit on every mutation
type LedgerDocument struct {
	Participants map[ParticipantID]*Participant `json:"participants"`
}

// NewLedgerDocument returns an empty ledger document
func NewLedgerDocument() *LedgerDocument {
	return &LedgerDocument{
		Participants: make(map[ParticipantID]*Participant),
	}
}

// Clone returns a deep copy of the document
func (d *LedgerDocument) Clone() *LedgerDocument {
	out := NewLedgerDocument()
	for id, p := range d.Participants {
		cp := *p
		cp.OwnedShips = append([]ShipName(nil), p.OwnedShips...)
		out.Participants[id] = &cp
	}
	return out
}
