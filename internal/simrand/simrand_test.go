package simrand

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(1234)
	b := New(1234)
	for i := 0; i < 1000; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
	if a.Intn(100) != b.Intn(100) {
		t.Fatal("Intn diverged after aligned draws")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestChanceDrawCountStable(t *testing.T) {
	// Chance must consume exactly one draw whatever p is, so clamped edge
	// cases cannot shift the sequence for later callers.
	a := New(7)
	a.Chance(-1)
	a.Chance(2)
	a.Chance(0.5)

	b := New(7)
	b.Float64()
	b.Float64()
	b.Float64()

	if a.Float64() != b.Float64() {
		t.Fatal("Chance consumed an uneven number of draws")
	}
}

func TestChanceEdges(t *testing.T) {
	s := New(3)
	for i := 0; i < 10; i++ {
		if s.Chance(0) {
			t.Fatal("p=0 must never hit")
		}
		if !s.Chance(1) {
			t.Fatal("p=1 must always hit")
		}
	}
}

func TestSeedAccessor(t *testing.T) {
	if got := New(99).Seed(); got != 99 {
		t.Fatalf("Seed() = %d, want 99", got)
	}
}
