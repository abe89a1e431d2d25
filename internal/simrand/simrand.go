// Package simrand is the single source of randomness for a simulated match.
//
// Determinism is a hard contract: the same seed plus the same inputs must
// reproduce bit-identical match output for replay and regression testing.
// Every function that consumes randomness takes a *Source explicitly; there
// is no package-level generator and no hidden fallback seed.
package simrand

import "math/rand"

// Source wraps a seeded math/rand generator. It is not safe for concurrent
// use, which is fine: a match runs single-threaded and owns exactly one.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded with seed. Two Sources with the same seed
// produce identical call-for-call output.
func New(seed int64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed reports the seed this Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Float64 returns the next value in [0.0, 1.0).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Intn returns the next value in [0, n). n must be > 0.
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

// Chance reports whether the next draw falls under p. p is clamped to
// [0, 1] so defensive callers can pass unclamped probabilities.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		s.rng.Float64() // keep the draw count stable for replay
		return false
	}
	if p >= 1 {
		s.rng.Float64()
		return true
	}
	return s.rng.Float64() < p
}
