package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

func TestUnitStrength_MidfieldScenario(t *testing.T) {
	// Five midfielders, k=5 equals pool size: the unit strength is exactly
	// the mean of the five weighted scores with neutral multipliers.
	clearances := []float64{90, 80, 70, 60, 50}
	pool := make([]Entrant, 0, 5)
	want := 0.0
	for i, cl := range clearances {
		attr := &model.Attributes{Clearance: cl, Strength: 80, Positioning: 70, DecisionMaking: 70}
		pool = append(pool, Entrant{ID: i + 1, Position: model.Midfield, Attr: attr, FatigueMult: 1, InjuryMult: 1})
		want += 0.45*cl + 0.25*80 + 0.15*70 + 0.15*70
	}
	want /= 5

	var buf Buffer
	got := UnitStrength(ContestMidfield, pool, &buf)
	assert.InDelta(t, want, got, 1e-9)
}

func TestUnitStrength_EmptyPoolNeutral(t *testing.T) {
	var buf Buffer
	for _, c := range []ContestType{ContestMidfield, ContestForwardEntry, ContestDefense} {
		assert.Equal(t, 1.0, UnitStrength(c, nil, &buf), "contest %v", c)
	}
}

func TestUnitStrength_AppliesMultipliers(t *testing.T) {
	attr := &model.Attributes{Clearance: 80, Strength: 80, Positioning: 80, DecisionMaking: 80}
	fullStrength := []Entrant{{ID: 1, Position: model.Midfield, Attr: attr, FatigueMult: 1, InjuryMult: 1}}
	gassed := []Entrant{{ID: 1, Position: model.Midfield, Attr: attr, FatigueMult: 0.6, InjuryMult: 0.9}}

	var buf Buffer
	full := UnitStrength(ContestMidfield, fullStrength, &buf)
	reduced := UnitStrength(ContestMidfield, gassed, &buf)
	assert.InDelta(t, full*0.6*0.9, reduced, 1e-9)
}

func TestWeightedScore_Formulas(t *testing.T) {
	a := &model.Attributes{
		Kicking: 10, Marking: 20, Handball: 30, Tackling: 40, Speed: 50,
		Strength: 60, Positioning: 70, DecisionMaking: 80, Clearance: 90, WorkRate: 100,
	}
	assert.InDelta(t, 0.45*90+0.25*60+0.15*70+0.15*80, WeightedScore(ContestMidfield, a), 1e-9)
	assert.InDelta(t, 0.50*20+0.30*10+0.20*80, WeightedScore(ContestForwardEntry, a), 1e-9)
	assert.InDelta(t, 0.50*40+0.30*70+0.20*100, WeightedScore(ContestDefense, a), 1e-9)
}

func TestTwoWayOdds_Complement(t *testing.T) {
	values := []float64{-1000, -50, -1, 0, 0.5, 1, 42, 75.3, 1000}
	for _, a := range values {
		for _, b := range values {
			sum := TwoWayOdds(a, b) + TwoWayOdds(b, a)
			assert.InDelta(t, 1.0, sum, 1e-6, "a=%v b=%v", a, b)
		}
	}
}

func TestTwoWayOdds_StableAtExtremes(t *testing.T) {
	// Without the max-subtraction this overflows to NaN.
	p := TwoWayOdds(1e4, 1e4-1)
	assert.False(t, math.IsNaN(p))
	assert.Greater(t, p, 0.5)
	assert.LessOrEqual(t, p, 1.0)

	assert.Equal(t, 0.5, TwoWayOdds(7, 7))
}

func TestTwoWayOdds_Monotonic(t *testing.T) {
	assert.Greater(t, TwoWayOdds(2, 1), TwoWayOdds(1, 1))
	assert.Less(t, TwoWayOdds(1, 2), 0.5)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(1.5))
}

func BenchmarkUnitStrength(b *testing.B) {
	pool := make([]Entrant, 18)
	for i := range pool {
		attr := &model.Attributes{Clearance: float64(40 + i*3), Strength: 70, Positioning: 70, DecisionMaking: 70}
		pool[i] = Entrant{ID: i + 1, Position: model.Midfield, Attr: attr, FatigueMult: 1, InjuryMult: 1}
	}
	var buf Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		UnitStrength(ContestMidfield, pool, &buf)
	}
}
