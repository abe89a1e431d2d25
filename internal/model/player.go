package model

import "fmt"

// Attributes are a player's static match ratings on a 0-100 scale.
// They are owned by the roster and read-only for the duration of a match;
// fatigue and injury effects are applied as multipliers downstream, never
// written back here.
type Attributes struct {
	Kicking        float64 `yaml:"kicking"`
	Marking        float64 `yaml:"marking"`
	Handball       float64 `yaml:"handball"`
	Tackling       float64 `yaml:"tackling"`
	Speed          float64 `yaml:"speed"`
	Strength       float64 `yaml:"strength"`
	Positioning    float64 `yaml:"positioning"`
	DecisionMaking float64 `yaml:"decision_making"`
	Clearance      float64 `yaml:"clearance"`
	WorkRate       float64 `yaml:"work_rate"`
}

// Player is a roster entry. ID must be unique within a match; it is the
// deterministic tie-break key for selection ordering.
type Player struct {
	ID           int        `yaml:"id"`
	Name         string     `yaml:"name"`
	Age          int        `yaml:"age"`
	FitnessLevel float64    `yaml:"fitness"`   // 0-100
	Condition    float64    `yaml:"condition"` // 0-100 at match start
	Position     Position   `yaml:"position"`
	Attr         Attributes `yaml:"attributes"`
}

// Roster is a team's full player list for one match: the first FieldSize
// entries start on the field, the remainder on the bench.
type Roster struct {
	Team    string   `yaml:"team"`
	Players []Player `yaml:"players"`
}

// FieldSize is the number of players on the field per team.
const FieldSize = 18

// Validate rejects rosters that cannot start a match.
func (r Roster) Validate() error {
	if len(r.Players) < FieldSize {
		return fmt.Errorf("roster %q: need at least %d players, have %d", r.Team, FieldSize, len(r.Players))
	}
	seen := make(map[int]bool, len(r.Players))
	for _, p := range r.Players {
		if seen[p.ID] {
			return fmt.Errorf("roster %q: duplicate player id %d", r.Team, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
