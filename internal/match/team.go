package match

import (
	"github.com/VoidbreakDev/afl-coach-sim/internal/config"
	"github.com/VoidbreakDev/afl-coach-sim/internal/engine"
	"github.com/VoidbreakDev/afl-coach-sim/internal/fatigue"
	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
	"github.com/VoidbreakDev/afl-coach-sim/internal/rotation"
)

// team is one side's runtime state. The simulation owns the on-field and
// bench lists and mutates membership only through the rotation manager.
type team struct {
	name    string
	players []model.Player        // stable backing store; never resized
	byID    map[int]*model.Player // points into players

	onField []*model.PlayerMatchState
	bench   []*model.PlayerMatchState
	states  map[int]*model.PlayerMatchState
	fatigue map[int]*fatigue.State

	rot     *rotation.Manager
	goals   int
	behinds int

	// Hot-path workspaces, reused every contest.
	entrants []engine.Entrant
	buf      engine.Buffer

	transitionsSeen map[int]int
}

func newTeam(r model.Roster, tac config.Tactics) *team {
	t := &team{
		name:            r.Team,
		players:         make([]model.Player, len(r.Players)),
		byID:            make(map[int]*model.Player, len(r.Players)),
		states:          make(map[int]*model.PlayerMatchState, len(r.Players)),
		fatigue:         make(map[int]*fatigue.State, len(r.Players)),
		entrants:        make([]engine.Entrant, 0, model.FieldSize),
		transitionsSeen: make(map[int]int, len(r.Players)),
		rot: rotation.NewManager(rotation.Context{
			TargetInterchanges: tac.TargetInterchanges,
			InterchangeCap:     tac.InterchangeCap,
		}),
	}
	copy(t.players, r.Players)
	for i := range t.players {
		p := &t.players[i]
		t.byID[p.ID] = p
		onField := i < model.FieldSize
		st := model.NewPlayerMatchState(*p, onField)
		t.states[p.ID] = st
		t.fatigue[p.ID] = fatigue.NewState(*p)
		if onField {
			t.onField = append(t.onField, st)
		} else {
			t.bench = append(t.bench, st)
		}
	}
	return t
}

func (t *team) points() int { return t.goals*6 + t.behinds }

// refreshEntrants rebuilds the reusable entrant view of the on-field side.
// Attribute pointers reference the team's stable backing store, so the
// selector reads live multipliers without copying attribute blocks.
func (t *team) refreshEntrants() []engine.Entrant {
	t.entrants = t.entrants[:0]
	for _, st := range t.onField {
		p := t.byID[st.PlayerID]
		t.entrants = append(t.entrants, engine.Entrant{
			ID:          p.ID,
			Position:    p.Position,
			Attr:        &p.Attr,
			FatigueMult: st.FatigueMultiplier,
			InjuryMult:  st.InjuryMultiplier,
		})
	}
	return t.entrants
}

// unitStrengths computes all three ratings for the current on-field side.
func (t *team) unitStrengths() (mid, fwd, def float64) {
	pool := t.refreshEntrants()
	mid = engine.UnitStrength(engine.ContestMidfield, pool, &t.buf)
	fwd = engine.UnitStrength(engine.ContestForwardEntry, pool, &t.buf)
	def = engine.UnitStrength(engine.ContestDefense, pool, &t.buf)
	return mid, fwd, def
}
