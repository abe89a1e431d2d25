package engine

import "math"

// UnitStrength aggregates the top-K selection into one number: the mean of
// the selected weighted scores, each scaled by that player's current fatigue
// and injury multipliers. An empty pool (or one with no scoreable players)
// returns the neutral 1.0 so a degenerate match state degrades instead of
// failing mid-simulation.
//
// buf is the caller-owned selection workspace; see Buffer.
func UnitStrength(c ContestType, pool []Entrant, buf *Buffer) float64 {
	n := SelectTopK(pool, c, c.K(), buf)
	if n == 0 {
		return 1.0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		idx, score := buf.At(i)
		p := &pool[idx]
		sum += score * p.FatigueMult * p.InjuryMult
	}
	return sum / float64(n)
}

// TwoWayOdds returns the probability that a unit of strength a beats one of
// strength b. It is a two-class softmax with the max subtracted before
// exponentiating, so large ratings cannot overflow. For all finite a and b,
// TwoWayOdds(a, b) + TwoWayOdds(b, a) == 1 within floating tolerance.
func TwoWayOdds(a, b float64) float64 {
	m := math.Max(a, b)
	ea := math.Exp(a - m)
	eb := math.Exp(b - m)
	return ea / (ea + eb)
}

// Clamp01 bounds a probability-like value to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
