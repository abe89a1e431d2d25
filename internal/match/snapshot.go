package match

import (
	"github.com/VoidbreakDev/afl-coach-sim/internal/fatigue"
	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

// PlayerSnapshot is the read-only per-player view exposed to collaborators
// (commentary, persistence). Everything here is a copy; mutating a snapshot
// cannot touch the running match.
type PlayerSnapshot struct {
	PlayerID  int
	Name      string
	Position  string
	OnField   bool
	Condition float64
	Fatigue   float64
	Zone      string
	Urgency   string
	Stint     float64
	Impact    fatigue.Impact
}

// TeamSnapshot is one side's view at an instant.
type TeamSnapshot struct {
	Name             string
	Strengths        UnitStrengths
	Goals            int
	Behinds          int
	Points           int
	InterchangesUsed int
	Players          []PlayerSnapshot
}

// Snapshot is the full per-tick view: clock, pressure flags, both sides,
// and the rotation events recorded so far.
type Snapshot struct {
	MatchSeconds float64
	Quarter      int
	Situation    Situation
	Home         TeamSnapshot
	Away         TeamSnapshot
	Events       []RotationEvent
}

// Snapshot builds the current read-only view. It allocates, so callers on a
// batch path should sample it at event boundaries rather than every tick.
func (s *Simulation) Snapshot() Snapshot {
	margin := s.home.points() - s.away.points()
	snap := Snapshot{
		MatchSeconds: s.clock.MatchElapsed(),
		Quarter:      s.clock.Quarter(),
		Situation:    s.clock.SituationFor(margin),
		Home:         s.teamSnapshot(s.home),
		Away:         s.teamSnapshot(s.away),
	}
	snap.Events = make([]RotationEvent, len(s.events))
	copy(snap.Events, s.events)
	return snap
}

func (s *Simulation) teamSnapshot(t *team) TeamSnapshot {
	mid, fwd, def := t.unitStrengths()
	ts := TeamSnapshot{
		Name:             t.name,
		Strengths:        UnitStrengths{Midfield: mid, ForwardEntry: fwd, Defense: def},
		Goals:            t.goals,
		Behinds:          t.behinds,
		Points:           t.points(),
		InterchangesUsed: t.rot.SwapsUsed(),
		Players:          make([]PlayerSnapshot, 0, len(t.players)),
	}
	for _, lists := range [][]*model.PlayerMatchState{t.onField, t.bench} {
		for _, st := range lists {
			p := t.byID[st.PlayerID]
			fs := t.fatigue[st.PlayerID]
			ts.Players = append(ts.Players, PlayerSnapshot{
				PlayerID:  p.ID,
				Name:      p.Name,
				Position:  p.Position.String(),
				OnField:   st.OnField,
				Condition: st.Condition,
				Fatigue:   fs.CurrentFatigue,
				Zone:      fs.Zone().String(),
				Urgency:   fs.Urgency().String(),
				Stint:     st.SecondsSinceRotation,
				Impact:    fatigue.ComputeImpact(fs),
			})
		}
	}
	return ts
}
