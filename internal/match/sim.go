// Package match is the timing controller: it advances the clock, drives the
// fatigue model and rotation manager once per tick, resolves contests with
// the rating engine, and records the snapshots and events that downstream
// consumers (commentary, persistence) read.
package match

import (
	"fmt"

	"github.com/VoidbreakDev/afl-coach-sim/internal/config"
	"github.com/VoidbreakDev/afl-coach-sim/internal/engine"
	"github.com/VoidbreakDev/afl-coach-sim/internal/fatigue"
	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
	"github.com/VoidbreakDev/afl-coach-sim/internal/observ"
	"github.com/VoidbreakDev/afl-coach-sim/internal/simrand"
)

// oddsTemperature scales raw unit strengths before the softmax so realistic
// rating gaps (a handful of points) land in sensible probability territory
// instead of saturating at 0 or 1.
const oddsTemperature = 12.0

// InjuryProvider supplies the external injury subsystem's per-player
// multiplier, refreshed each tick. Values are clamped to [0,1]; injury
// probability itself is out of scope here.
type InjuryProvider func(team string, playerID int) float64

// RotationEvent records one interchange. Seq is a deterministic sequence
// number: two runs with the same seed produce identical event logs.
type RotationEvent struct {
	Seq            int
	MatchSeconds   float64
	Quarter        int
	Team           string
	OffID          int
	OnID           int
	Aggressiveness float64
}

// RatingSample is one contest's unit-strength readings for both sides.
type RatingSample struct {
	MatchSeconds float64
	Quarter      int
	Home         UnitStrengths
	Away         UnitStrengths
}

// UnitStrengths bundles the three contest ratings.
type UnitStrengths struct {
	Midfield     float64
	ForwardEntry float64
	Defense      float64
}

// Result is the completed match outcome plus the replayable event record.
type Result struct {
	HomeTeam    string
	AwayTeam    string
	HomeGoals   int
	HomeBehinds int
	HomePoints  int
	AwayGoals   int
	AwayBehinds int
	AwayPoints  int
	Events      []RotationEvent
	Ratings     []RatingSample
	Final       Snapshot
}

// Simulation runs one match synchronously for one caller. It is not safe
// for concurrent use and does not need to be: a match either runs to
// completion in one Run call or is not started.
type Simulation struct {
	cfg     config.Root
	rng     *simrand.Source
	fm      *fatigue.Model
	clock   *Clock
	home    *team
	away    *team
	injury  InjuryProvider
	weather model.Weather

	sinceContest float64
	events       []RotationEvent
	ratings      []RatingSample
	tickHook     func()
}

// New validates everything that must not enter the tick loop: the
// configuration, both rosters, and the random source. A nil source is an
// error, never a silent reseed — replay depends on the caller's seed being
// the only one in play.
func New(cfg config.Root, home, away model.Roster, rng *simrand.Source) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("deterministic random source is required")
	}
	if err := home.Validate(); err != nil {
		return nil, err
	}
	if err := away.Validate(); err != nil {
		return nil, err
	}
	weather, err := model.ParseWeather(cfg.Match.Weather)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:     cfg,
		rng:     rng,
		fm:      fatigue.NewModel(weather),
		clock:   NewClock(cfg.Match.QuarterSeconds),
		home:    newTeam(home, cfg.Tactics),
		away:    newTeam(away, cfg.Tactics),
		weather: weather,
	}, nil
}

// SetInjuryProvider installs the external injury multiplier feed. Call
// before Run; the default keeps every multiplier at 1.0.
func (s *Simulation) SetInjuryProvider(p InjuryProvider) { s.injury = p }

// SetTickHook installs a callback invoked after every tick, before the next
// one starts. The live-viewing harness uses it for pacing; the hook must not
// mutate match state.
func (s *Simulation) SetTickHook(h func()) { s.tickHook = h }

// Run plays the match to completion and returns the result. The per-tick
// order is fixed: fatigue update, rotation check, contest resolution.
func (s *Simulation) Run() Result {
	observ.Log("match_start", map[string]any{
		"home": s.home.name, "away": s.away.name,
		"seed": s.rng.Seed(), "weather": s.weather.String(), "venue": s.cfg.Match.Venue,
	})
	for !s.clock.Finished() {
		dt := s.cfg.Match.TickSeconds
		if rem := s.clock.QuarterRemaining(); dt > rem {
			dt = rem
		}
		s.step(dt)
		if s.clock.Advance(dt) {
			s.quarterBreak()
		}
		if s.tickHook != nil {
			s.tickHook()
		}
	}
	res := s.result()
	observ.Log("match_end", map[string]any{
		"home": s.home.name, "home_points": res.HomePoints,
		"away": s.away.name, "away_points": res.AwayPoints,
		"interchanges_home": s.home.rot.SwapsUsed(),
		"interchanges_away": s.away.rot.SwapsUsed(),
	})
	return res
}

func (s *Simulation) step(dt float64) {
	margin := s.home.points() - s.away.points()
	sit := s.clock.SituationFor(margin)
	intensity := sit.Intensity()
	now := s.clock.MatchElapsed()

	s.updateTeam(s.home, intensity, dt, now)
	s.updateTeam(s.away, intensity, dt, now)

	s.rotateTeam(s.home, dt, now)
	s.rotateTeam(s.away, dt, now)

	s.sinceContest += dt
	if s.sinceContest >= s.cfg.Match.ContestIntervalSeconds {
		s.sinceContest -= s.cfg.Match.ContestIntervalSeconds
		s.contest(now)
	}
}

// updateTeam runs the fatigue model over every player: activity accumulation
// on the field, the (zero-rate) substitution recovery class on the bench.
func (s *Simulation) updateTeam(t *team, intensity, dt, now float64) {
	for _, st := range t.onField {
		fs := t.fatigue[st.PlayerID]
		act := pickActivity(t.byID[st.PlayerID].Position, s.rng)
		s.fm.Accumulate(fs, act, intensity, dt, now)
		s.refreshDerived(t, st, fs)
	}
	for _, st := range t.bench {
		fs := t.fatigue[st.PlayerID]
		s.fm.Recover(fs, fatigue.RecoverySubstitution, dt, now)
		s.refreshDerived(t, st, fs)
	}
}

// refreshDerived recomputes the per-player derived fields from fatigue
// state: condition, the rating multipliers, and the zone counters.
func (s *Simulation) refreshDerived(t *team, st *model.PlayerMatchState, fs *fatigue.State) {
	imp := fatigue.ComputeImpact(fs)
	st.FatigueMultiplier = fatigue.PerformanceMultiplier(imp)
	if s.injury != nil {
		st.InjuryMultiplier = engine.Clamp01(s.injury(t.name, st.PlayerID))
	}
	start := t.byID[st.PlayerID].Condition
	st.Condition = (100 - fs.CurrentFatigue) * start / 100

	if n := len(fs.Transitions()); n > t.transitionsSeen[st.PlayerID] {
		observ.IncCounterBy("zone_transitions_total", map[string]string{"team": t.name},
			float64(n-t.transitionsSeen[st.PlayerID]))
		t.transitionsSeen[st.PlayerID] = n
	}
}

func (s *Simulation) rotateTeam(t *team, dt, now float64) {
	swap, ok := t.rot.MaybeRotate(t.onField, t.bench, dt)
	if !ok {
		return
	}
	ev := RotationEvent{
		Seq:            len(s.events) + 1,
		MatchSeconds:   now,
		Quarter:        s.clock.Quarter(),
		Team:           t.name,
		OffID:          swap.OffID,
		OnID:           swap.OnID,
		Aggressiveness: swap.Aggressiveness,
	}
	s.events = append(s.events, ev)
	observ.IncCounter("rotation_swaps_total", map[string]string{"team": t.name})
	observ.Log("rotation", map[string]any{
		"team": t.name, "off": swap.OffID, "on": swap.OnID,
		"quarter": ev.Quarter, "t": now,
	})
}

// contest resolves one simulated ball-up: midfield strength decides which
// side attacks, then the attacker's forward entry against the defender's
// pressure decides whether the entry scores, and a final draw splits goal
// from behind.
func (s *Simulation) contest(now float64) {
	hm, hf, hd := s.home.unitStrengths()
	am, af, ad := s.away.unitStrengths()

	s.ratings = append(s.ratings, RatingSample{
		MatchSeconds: now,
		Quarter:      s.clock.Quarter(),
		Home:         UnitStrengths{Midfield: hm, ForwardEntry: hf, Defense: hd},
		Away:         UnitStrengths{Midfield: am, ForwardEntry: af, Defense: ad},
	})
	observ.IncCounter("contests_total", nil)

	homeAttacks := s.rng.Chance(engine.TwoWayOdds(hm/oddsTemperature, am/oddsTemperature))
	atk := s.home
	atkFwd, defPress := hf, ad
	if !homeAttacks {
		atk = s.away
		atkFwd, defPress = af, hd
	}

	entryOdds := engine.TwoWayOdds(atkFwd/oddsTemperature, defPress/oddsTemperature)
	if !s.rng.Chance(entryOdds) {
		return // entry repelled
	}
	goalProb := engine.Clamp01(0.45 + 0.20*(entryOdds-0.5))
	if s.rng.Chance(goalProb) {
		atk.goals++
	} else {
		atk.behinds++
	}
}

// quarterBreak applies the between-quarters recovery pass to every player
// on both lists. Advance has already moved the clock into the next quarter,
// so the quarter that just ended is Quarter()-1 (or the last quarter if the
// match is over, in which case there is nothing to recover for).
func (s *Simulation) quarterBreak() {
	if s.clock.Finished() {
		return
	}
	ended := s.clock.Quarter() - 1
	rt := fatigue.RecoveryQuarterBreak
	dur := s.cfg.Match.QuarterBreakSeconds
	if ended == 2 {
		rt = fatigue.RecoveryHalfTime
		dur = s.cfg.Match.HalfTimeSeconds
	}
	now := s.clock.MatchElapsed()
	for _, t := range []*team{s.home, s.away} {
		for _, lists := range [][]*model.PlayerMatchState{t.onField, t.bench} {
			for _, st := range lists {
				fs := t.fatigue[st.PlayerID]
				s.fm.Recover(fs, rt, dur, now)
				s.refreshDerived(t, st, fs)
			}
		}
	}
	observ.Log("quarter_end", map[string]any{
		"quarter": ended, "home_points": s.home.points(), "away_points": s.away.points(),
	})
}

func (s *Simulation) result() Result {
	return Result{
		HomeTeam:    s.home.name,
		AwayTeam:    s.away.name,
		HomeGoals:   s.home.goals,
		HomeBehinds: s.home.behinds,
		HomePoints:  s.home.points(),
		AwayGoals:   s.away.goals,
		AwayBehinds: s.away.behinds,
		AwayPoints:  s.away.points(),
		Events:      s.events,
		Ratings:     s.ratings,
		Final:       s.Snapshot(),
	}
}

// pickActivity draws the tick's activity class for a role. Exactly one draw
// per call regardless of outcome, so the generator's call sequence stays
// stable for replay. Midfield roles run harder; the ruck lives in contests;
// key-position players spend more of the game positioning at a walk.
func pickActivity(p model.Position, rng *simrand.Source) fatigue.Activity {
	r := rng.Float64()
	switch p {
	case model.Ruck:
		switch {
		case r < 0.15:
			return fatigue.ActivityWalking
		case r < 0.40:
			return fatigue.ActivityJogging
		case r < 0.60:
			return fatigue.ActivityRunning
		case r < 0.70:
			return fatigue.ActivitySprinting
		case r < 0.95:
			return fatigue.ActivityContest
		default:
			return fatigue.ActivityTackling
		}
	case model.Midfield, model.Wing:
		switch {
		case r < 0.05:
			return fatigue.ActivityWalking
		case r < 0.25:
			return fatigue.ActivityJogging
		case r < 0.60:
			return fatigue.ActivityRunning
		case r < 0.75:
			return fatigue.ActivitySprinting
		case r < 0.90:
			return fatigue.ActivityContest
		default:
			return fatigue.ActivityTackling
		}
	default:
		switch {
		case r < 0.25:
			return fatigue.ActivityWalking
		case r < 0.55:
			return fatigue.ActivityJogging
		case r < 0.80:
			return fatigue.ActivityRunning
		case r < 0.90:
			return fatigue.ActivitySprinting
		case r < 0.96:
			return fatigue.ActivityContest
		default:
			return fatigue.ActivityTackling
		}
	}
}
