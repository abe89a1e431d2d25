package model

import (
	"fmt"

	"github.com/VoidbreakDev/afl-coach-sim/internal/simrand"
)

// lineup is the generated squad structure: 18 starters in a standard
// positional spread plus four interchange players.
var lineup = []Position{
	Ruck,
	Midfield, Midfield, Midfield, Midfield, Midfield,
	Wing, Wing,
	HalfForward, HalfForward, HalfForward,
	FullForward, FullForward,
	HalfBack, HalfBack, HalfBack,
	FullBack, FullBack,
	// bench
	Midfield, Wing, HalfForward, HalfBack,
}

// GenerateRoster builds a deterministic synthetic squad from a seed, for
// the cmd harnesses and tests. The same seed always yields the same squad.
func GenerateRoster(team string, seed int64) Roster {
	rng := simrand.New(seed)
	r := Roster{Team: team, Players: make([]Player, 0, len(lineup))}
	for i, pos := range lineup {
		p := Player{
			ID:           i + 1,
			Name:         fmt.Sprintf("%s %02d", team, i+1),
			Age:          20 + rng.Intn(14),
			FitnessLevel: 60 + float64(rng.Intn(36)),
			Condition:    90 + float64(rng.Intn(11)),
			Position:     pos,
			Attr:         generateAttributes(pos, rng),
		}
		r.Players = append(r.Players, p)
	}
	return r
}

func generateAttributes(pos Position, rng *simrand.Source) Attributes {
	base := func() float64 { return 40 + float64(rng.Intn(36)) }
	boost := func(v float64) float64 {
		v += 15 + float64(rng.Intn(11))
		if v > 99 {
			v = 99
		}
		return v
	}
	a := Attributes{
		Kicking:        base(),
		Marking:        base(),
		Handball:       base(),
		Tackling:       base(),
		Speed:          base(),
		Strength:       base(),
		Positioning:    base(),
		DecisionMaking: base(),
		Clearance:      base(),
		WorkRate:       base(),
	}
	switch pos {
	case Ruck:
		a.Strength = boost(a.Strength)
		a.Clearance = boost(a.Clearance)
	case Midfield:
		a.Clearance = boost(a.Clearance)
		a.WorkRate = boost(a.WorkRate)
	case Wing:
		a.Speed = boost(a.Speed)
		a.WorkRate = boost(a.WorkRate)
	case HalfForward, FullForward:
		a.Marking = boost(a.Marking)
		a.Kicking = boost(a.Kicking)
	case HalfBack, FullBack:
		a.Tackling = boost(a.Tackling)
		a.Positioning = boost(a.Positioning)
	}
	return a
}
