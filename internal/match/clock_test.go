package match

import "testing"

func TestClockQuarterProgression(t *testing.T) {
	c := NewClock(1200)
	if c.Quarter() != 1 || c.Finished() {
		t.Fatal("clock must start in Q1")
	}

	ends := 0
	for !c.Finished() {
		if c.Advance(6) {
			ends++
		}
	}
	if ends != Quarters {
		t.Fatalf("saw %d quarter ends, want %d", ends, Quarters)
	}
	if got := c.MatchElapsed(); got != 4800 {
		t.Fatalf("MatchElapsed = %v, want 4800", got)
	}
}

func TestClockRemaining(t *testing.T) {
	c := NewClock(100)
	c.Advance(30)
	if c.QuarterRemaining() != 70 {
		t.Fatalf("QuarterRemaining = %v, want 70", c.QuarterRemaining())
	}
	if c.QuarterElapsed() != 30 {
		t.Fatalf("QuarterElapsed = %v, want 30", c.QuarterElapsed())
	}
}

func TestSituationFlags(t *testing.T) {
	c := NewClock(1200)
	// Q1: nothing final about it.
	s := c.SituationFor(3)
	if s.FinalQuarter || s.FinalMinutes {
		t.Fatalf("Q1 flagged final: %+v", s)
	}
	if !s.CloseGame {
		t.Fatal("3-point margin is close")
	}

	// Jump to Q4 with 4 minutes left.
	for q := 0; q < 3; q++ {
		for c.Quarter() == q+1 && !c.Finished() {
			c.Advance(60)
		}
	}
	c.Advance(1200 - 240)
	s = c.SituationFor(-10)
	if !s.FinalQuarter || !s.FinalMinutes {
		t.Fatalf("Q4 last minutes not flagged: %+v", s)
	}
	if !s.CloseGame {
		t.Fatal("margin sign must not matter for closeness")
	}

	s = c.SituationFor(40)
	if s.CloseGame {
		t.Fatal("40 points is not close")
	}
}

func TestSituationIntensity(t *testing.T) {
	base := Situation{}
	if base.Intensity() != 1.0 {
		t.Fatalf("neutral intensity = %v, want 1.0", base.Intensity())
	}
	crunch := Situation{FinalQuarter: true, FinalMinutes: true, CloseGame: true}
	if crunch.Intensity() <= 1.0 {
		t.Fatal("a close finish is played harder than neutral")
	}
	blowout := Situation{FinalQuarter: true}
	if blowout.Intensity() >= 1.0 {
		t.Fatal("a final-quarter blowout eases off")
	}
}
