package fatigue

import (
	"fmt"

	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

// Activity classifies what a player is doing during a tick. The multipliers
// are deliberately far apart: walking barely registers, a sprint or a hard
// tackle is the most expensive thing a player can do.
type Activity int

const (
	ActivityWalking Activity = iota
	ActivityJogging
	ActivityRunning
	ActivitySprinting
	ActivityContest
	ActivityTackling
)

func (a Activity) String() string {
	switch a {
	case ActivityWalking:
		return "walking"
	case ActivityJogging:
		return "jogging"
	case ActivityRunning:
		return "running"
	case ActivitySprinting:
		return "sprinting"
	case ActivityContest:
		return "contest"
	case ActivityTackling:
		return "tackling"
	default:
		return fmt.Sprintf("activity(%d)", int(a))
	}
}

// activityMultiplier is the baseline cost of each activity class, before the
// role profile's running/contest scaling is applied.
func activityMultiplier(a Activity) float64 {
	switch a {
	case ActivityWalking:
		return 0.20
	case ActivityJogging:
		return 0.55
	case ActivityRunning:
		return 1.00
	case ActivitySprinting:
		return 1.50
	case ActivityContest:
		return 1.35
	case ActivityTackling:
		return 1.40
	default:
		return 1.00
	}
}

// RecoveryType classifies a rest period. Substitution recovery is zero: a
// benched player holds fatigue flat under the current zone-tracking design,
// and rotations gain value from bringing on players who started fresh.
type RecoveryType int

const (
	RecoveryPassive RecoveryType = iota
	RecoveryActive
	RecoveryQuarterBreak
	RecoveryHalfTime
	RecoverySubstitution
)

func (r RecoveryType) String() string {
	switch r {
	case RecoveryPassive:
		return "passive"
	case RecoveryActive:
		return "active"
	case RecoveryQuarterBreak:
		return "quarter_break"
	case RecoveryHalfTime:
		return "half_time"
	case RecoverySubstitution:
		return "substitution"
	default:
		return fmt.Sprintf("recovery(%d)", int(r))
	}
}

func recoveryMultiplier(r RecoveryType) float64 {
	switch r {
	case RecoveryPassive:
		return 1.0
	case RecoveryActive:
		return 1.5
	case RecoveryQuarterBreak:
		return 3.0
	case RecoveryHalfTime:
		return 8.0
	case RecoverySubstitution:
		return 0.0
	default:
		return 1.0
	}
}

// ZoneTransition records a band change for analytics and tests.
type ZoneTransition struct {
	AtSeconds float64
	From      Zone
	To        Zone
}

// State is the per-player mutable fatigue record. CurrentFatigue is clamped
// to [0,100] after every update; the zone is always computed from it.
type State struct {
	Position     model.Position
	Age          int
	FitnessLevel float64

	CurrentFatigue   float64
	TotalAccumulated float64
	TotalRecovered   float64

	transitions []ZoneTransition
	lastZone    Zone
}

// NewState initializes fatigue tracking for a player at zero fatigue.
func NewState(p model.Player) *State {
	return &State{
		Position:     p.Position,
		Age:          p.Age,
		FitnessLevel: p.FitnessLevel,
		lastZone:     ZoneFresh,
	}
}

// Zone returns the current band, derived from CurrentFatigue.
func (s *State) Zone() Zone { return ZoneFor(s.CurrentFatigue) }

// Urgency returns the substitution urgency for the current band.
func (s *State) Urgency() Urgency { return UrgencyFor(s.Zone()) }

// Transitions returns the zone-change log in occurrence order.
func (s *State) Transitions() []ZoneTransition { return s.transitions }

func (s *State) noteTransition(atSeconds float64) {
	z := s.Zone()
	if z == s.lastZone {
		return
	}
	s.transitions = append(s.transitions, ZoneTransition{AtSeconds: atSeconds, From: s.lastZone, To: z})
	s.lastZone = z
}

// Model computes fatigue deltas. It holds the match-wide context (weather,
// global recovery rate) so per-tick calls only carry per-player inputs.
type Model struct {
	weather            model.Weather
	globalRecoveryRate float64
}

// NewModel returns a fatigue model for the given match weather.
func NewModel(weather model.Weather) *Model {
	return &Model{weather: weather, globalRecoveryRate: 1.0}
}

func (m *Model) weatherMultiplier() float64 {
	switch m.weather {
	case model.WeatherHot:
		return 1.30
	case model.WeatherWet:
		return 1.10
	case model.WeatherCold:
		return 0.95
	default:
		return 1.00
	}
}

// Accumulate adds fatigue for dt seconds of the given activity at the given
// match intensity. atSeconds is the match clock, used only for the zone log.
// The result is clamped to [0,100]; accumulation never decreases fatigue.
func (m *Model) Accumulate(s *State, activity Activity, intensity, dt, atSeconds float64) {
	if dt <= 0 {
		return
	}
	prof := ProfileFor(s.Position)

	actMult := activityMultiplier(activity)
	switch activity {
	case ActivityJogging, ActivityRunning, ActivitySprinting:
		actMult *= prof.RunningMult
	case ActivityContest, ActivityTackling:
		actMult *= prof.ContestMult
	}

	fitnessMult := 1 + (100-s.FitnessLevel)/200
	loadMult := 1 + s.CurrentFatigue/200 // tired players fatigue faster
	ageMult := 1.0
	if s.Age > 25 {
		ageMult = 1 + float64(s.Age-25)*0.02
	}

	delta := prof.BaseRate * actMult * fitnessMult * loadMult * ageMult *
		m.weatherMultiplier() * intensity * prof.Resistance * dt
	if delta < 0 {
		delta = 0
	}

	s.CurrentFatigue = clamp(s.CurrentFatigue+delta, 0, 100)
	s.TotalAccumulated += delta
	s.noteTransition(atSeconds)
}

// Recover removes fatigue for dt seconds of the given rest class. The result
// is clamped to >= 0; recovery never increases fatigue.
func (m *Model) Recover(s *State, rt RecoveryType, dt, atSeconds float64) {
	if dt <= 0 {
		return
	}
	prof := ProfileFor(s.Position)

	fitnessMult := 1 + (s.FitnessLevel-50)/200
	ageMult := 1.0
	if s.Age > 30 {
		ageMult = 1 - float64(s.Age-30)*0.015
		if ageMult < 0.7 {
			ageMult = 0.7
		}
	}
	// Harder to recover when already deep in fatigue.
	resistMult := 1 - s.CurrentFatigue/150
	if resistMult < 0.5 {
		resistMult = 0.5
	}

	amount := prof.BaseRecovery * m.globalRecoveryRate * recoveryMultiplier(rt) *
		fitnessMult * ageMult * resistMult * dt
	if amount < 0 {
		amount = 0
	}

	s.CurrentFatigue = clamp(s.CurrentFatigue-amount, 0, 100)
	s.TotalRecovered += amount
	s.noteTransition(atSeconds)
}

// Impact is the performance effect of the current fatigue band. All fields
// are deterministic functions of the state; nothing here draws randomness.
type Impact struct {
	OverallModifier      float64
	SpeedReduction       float64
	AccuracyReduction    float64
	EnduranceReduction   float64
	DecisionMakingImpact float64
	InjuryRiskMultiplier float64
}

// ComputeImpact maps a fatigue state to its performance effect. Fresh players
// get a small positive edge, Light is neutral, and the penalty deepens with
// position inside each band. Only Exhausted raises injury risk (1.5x-2.0x).
// Players past 30 carry an extra linear penalty.
func ComputeImpact(s *State) Impact {
	z := s.Zone()
	lo, hi := z.bounds()
	frac := 0.0
	if hi > lo {
		frac = (s.CurrentFatigue - lo) / (hi - lo)
	}
	frac = clamp(frac, 0, 1)

	var imp Impact
	imp.InjuryRiskMultiplier = 1.0

	switch z {
	case ZoneFresh:
		imp.OverallModifier = 0.05
	case ZoneLight:
		// neutral
	case ZoneModerate:
		imp.OverallModifier = -(0.10 + 0.05*frac)
		imp.SpeedReduction = 0.05 + 0.05*frac
		imp.AccuracyReduction = 0.04 + 0.04*frac
		imp.EnduranceReduction = 0.08 + 0.07*frac
		imp.DecisionMakingImpact = 0.03 + 0.04*frac
	case ZoneHeavy:
		imp.OverallModifier = -(0.20 + 0.10*frac)
		imp.SpeedReduction = 0.12 + 0.08*frac
		imp.AccuracyReduction = 0.10 + 0.08*frac
		imp.EnduranceReduction = 0.18 + 0.10*frac
		imp.DecisionMakingImpact = 0.08 + 0.08*frac
	case ZoneExhausted:
		imp.OverallModifier = -(0.35 + 0.15*frac)
		imp.SpeedReduction = 0.25 + 0.15*frac
		imp.AccuracyReduction = 0.20 + 0.15*frac
		imp.EnduranceReduction = 0.30 + 0.20*frac
		imp.DecisionMakingImpact = 0.18 + 0.12*frac
		imp.InjuryRiskMultiplier = 1.5 + 0.5*frac
	}

	if s.Age > 30 {
		imp.OverallModifier -= float64(s.Age-30) * 0.01
	}
	return imp
}

// PerformanceMultiplier converts an impact into the 0.0-1.0+ factor applied
// multiplicatively to a player's ratings.
func PerformanceMultiplier(imp Impact) float64 {
	return clamp(1+imp.OverallModifier, 0, 1.2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
