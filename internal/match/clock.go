package match

// Quarters in a match.
const Quarters = 4

// finalMinutesWindow is how far from the final siren the "final minutes"
// pressure flag switches on.
const finalMinutesWindow = 300.0

// closeMargin is the score margin (two goals) under which a game counts as
// close for situational pressure.
const closeMargin = 12

// Clock advances simulated time across the four quarters. It knows nothing
// about players; the simulation drives it once per tick and reacts to
// quarter boundaries.
type Clock struct {
	quarterSeconds float64
	quarter        int // 1-based
	elapsed        float64
}

// NewClock returns a clock at the start of the first quarter.
func NewClock(quarterSeconds float64) *Clock {
	return &Clock{quarterSeconds: quarterSeconds, quarter: 1}
}

// Advance moves the clock forward dt seconds and reports whether the tick
// ended a quarter. The caller never advances past the final siren: dt is
// truncated at the quarter boundary, and Remaining tells it how much fits.
func (c *Clock) Advance(dt float64) (quarterEnded bool) {
	if c.Finished() || dt <= 0 {
		return false
	}
	c.elapsed += dt
	if c.elapsed >= c.quarterSeconds {
		c.elapsed = 0
		c.quarter++
		return true
	}
	return false
}

// Quarter returns the current quarter, 1-4. After the final siren it
// reports Quarters still.
func (c *Clock) Quarter() int {
	if c.quarter > Quarters {
		return Quarters
	}
	return c.quarter
}

// QuarterElapsed returns seconds played in the current quarter.
func (c *Clock) QuarterElapsed() float64 { return c.elapsed }

// QuarterRemaining returns seconds left in the current quarter.
func (c *Clock) QuarterRemaining() float64 {
	if c.Finished() {
		return 0
	}
	return c.quarterSeconds - c.elapsed
}

// MatchElapsed returns total seconds of play across completed and current
// quarters (breaks excluded).
func (c *Clock) MatchElapsed() float64 {
	if c.Finished() {
		return float64(Quarters) * c.quarterSeconds
	}
	return float64(c.quarter-1)*c.quarterSeconds + c.elapsed
}

// Finished reports whether the final siren has sounded.
func (c *Clock) Finished() bool { return c.quarter > Quarters }

// Situation is the set of pressure flags downstream rating and form logic
// consumes. It is recomputed each tick from the clock and the score margin.
type Situation struct {
	FinalQuarter bool
	FinalMinutes bool
	CloseGame    bool
}

// SituationFor derives the pressure flags from clock state and the current
// score margin (absolute points difference).
func (c *Clock) SituationFor(margin int) Situation {
	if margin < 0 {
		margin = -margin
	}
	s := Situation{
		FinalQuarter: c.Quarter() == Quarters && !c.Finished(),
		CloseGame:    margin <= closeMargin,
	}
	s.FinalMinutes = s.FinalQuarter && c.QuarterRemaining() <= finalMinutesWindow
	return s
}

// Intensity maps the situation onto the fatigue intensity multiplier: a
// close final quarter is played harder than garbage time.
func (s Situation) Intensity() float64 {
	switch {
	case s.FinalMinutes && s.CloseGame:
		return 1.20
	case s.FinalQuarter && s.CloseGame:
		return 1.10
	case s.FinalQuarter && !s.CloseGame:
		return 0.95
	default:
		return 1.0
	}
}
