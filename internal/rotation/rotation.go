// Package rotation implements the greedy interchange policy: swap the most
// fatigued eligible on-field player for the most rested eligible bench
// player. The policy draws no randomness; given the same player states it
// always makes the same call.
package rotation

import (
	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

// Eligibility gates. A player must have been on the field at least
// MinStintSeconds before being rotated off, and on the bench at least
// MinBenchRestSeconds (40% of a 180s bench cycle) before coming back on.
const (
	MinStintSeconds     = 240.0
	benchCycleSeconds   = 180.0
	MinBenchRestSeconds = 0.40 * benchCycleSeconds
)

// DefaultInterchangeCap is the league cap on interchanges per game.
const DefaultInterchangeCap = 75

// Context carries the tactical inputs to the rotation policy.
type Context struct {
	TargetInterchanges int // coach setting; drives the aggressiveness factor
	InterchangeCap     int // hard per-game limit; <= 0 means DefaultInterchangeCap
}

// Aggressiveness maps the tactical target onto [0,1]. A target of 40 or
// fewer interchanges is fully conservative, 100 or more fully aggressive.
// The factor does not gate eligibility; it is surfaced on each swap for
// analytics and downstream tactical logic.
func Aggressiveness(target int) float64 {
	a := (float64(target) - 40) / 60
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Swap reports a completed interchange.
type Swap struct {
	OffID          int
	OnID           int
	Aggressiveness float64
}

// Manager tracks interchange usage across a match and applies the policy
// each tick. The orchestrator owns the on-field and bench lists and mutates
// them only through MaybeRotate.
type Manager struct {
	ctx  Context
	used int
}

// NewManager returns a rotation manager for one match.
func NewManager(ctx Context) *Manager {
	if ctx.InterchangeCap <= 0 {
		ctx.InterchangeCap = DefaultInterchangeCap
	}
	return &Manager{ctx: ctx}
}

// SwapsUsed reports the interchanges spent so far.
func (m *Manager) SwapsUsed() int { return m.used }

// MaybeRotate advances stint/rest clocks by dt seconds and performs at most
// one interchange. The swap replaces the off-player's slot in the on-field
// list with the bench player (and vice versa) so neither list is reordered
// or resized. Returns the swap and true if one occurred; otherwise both
// lists are left unchanged and it returns false. With no eligible
// candidates the call is idempotent apart from the clock advance.
func (m *Manager) MaybeRotate(onField, bench []*model.PlayerMatchState, dt float64) (Swap, bool) {
	for _, p := range onField {
		p.SecondsSinceRotation += dt
	}
	for _, p := range bench {
		p.SecondsSinceRotation += dt
		if p.ReturnInSeconds > 0 {
			p.ReturnInSeconds -= dt
			if p.ReturnInSeconds < 0 {
				p.ReturnInSeconds = 0
			}
		}
	}

	if m.used >= m.ctx.InterchangeCap {
		return Swap{}, false
	}

	// Most fatigued eligible on-field player; longest stint breaks ties via
	// the stint term, first found wins exact ties.
	offIdx := -1
	bestOff := 0.0
	for i, p := range onField {
		if p.InjuredOut || p.SecondsSinceRotation < MinStintSeconds {
			continue
		}
		score := (100 - p.Condition) + 0.05*p.SecondsSinceRotation
		if offIdx == -1 || score > bestOff {
			offIdx = i
			bestOff = score
		}
	}
	if offIdx == -1 {
		return Swap{}, false
	}

	// Most rested eligible bench player.
	onIdx := -1
	bestCond := 0.0
	for i, p := range bench {
		if p.InjuredOut || p.ReturnInSeconds > 0 || p.SecondsSinceRotation < MinBenchRestSeconds {
			continue
		}
		if onIdx == -1 || p.Condition > bestCond {
			onIdx = i
			bestCond = p.Condition
		}
	}
	if onIdx == -1 {
		return Swap{}, false
	}

	off := onField[offIdx]
	on := bench[onIdx]
	off.OnField = false
	off.SecondsSinceRotation = 0
	on.OnField = true
	on.SecondsSinceRotation = 0
	onField[offIdx] = on
	bench[onIdx] = off
	m.used++

	return Swap{OffID: off.PlayerID, OnID: on.PlayerID, Aggressiveness: Aggressiveness(m.ctx.TargetInterchanges)}, true
}
