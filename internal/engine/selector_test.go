package engine

import (
	"testing"

	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

func midfielder(id int, clearance float64) Entrant {
	return Entrant{
		ID:       id,
		Position: model.Midfield,
		Attr: &model.Attributes{
			Clearance: clearance, Strength: 70, Positioning: 70, DecisionMaking: 70,
		},
		FatigueMult: 1, InjuryMult: 1,
	}
}

func TestSelectTopK_CountAndOrder(t *testing.T) {
	pool := []Entrant{
		midfielder(1, 50), midfielder(2, 90), midfielder(3, 70),
		midfielder(4, 80), midfielder(5, 60), midfielder(6, 85),
	}
	var buf Buffer
	n := SelectTopK(pool, ContestMidfield, 4, &buf)
	if n != 4 {
		t.Fatalf("want 4 selected, got %d", n)
	}
	prev := -1.0
	for i := 0; i < n; i++ {
		idx, score := buf.At(i)
		if prev >= 0 && score > prev {
			t.Fatalf("selection not descending at %d: %v after %v", i, score, prev)
		}
		prev = score
		if pool[idx].ID == 1 || pool[idx].ID == 5 {
			t.Fatalf("player %d should not make top 4", pool[idx].ID)
		}
	}
}

func TestSelectTopK_SmallPool(t *testing.T) {
	pool := []Entrant{midfielder(1, 80), midfielder(2, 70)}
	var buf Buffer
	if n := SelectTopK(pool, ContestMidfield, 5, &buf); n != 2 {
		t.Fatalf("want min(k, pool) = 2, got %d", n)
	}
}

func TestSelectTopK_DeterministicTieBreak(t *testing.T) {
	// Identical scores: lower ID must win, regardless of pool order.
	pool := []Entrant{midfielder(7, 80), midfielder(3, 80), midfielder(5, 80)}
	var buf Buffer
	n := SelectTopK(pool, ContestMidfield, 2, &buf)
	if n != 2 {
		t.Fatalf("want 2, got %d", n)
	}
	first, _ := buf.At(0)
	second, _ := buf.At(1)
	if pool[first].ID != 3 || pool[second].ID != 5 {
		t.Fatalf("tie-break wrong: got ids %d,%d want 3,5", pool[first].ID, pool[second].ID)
	}
}

func TestSelectTopK_PositionFallback(t *testing.T) {
	// No backs on the field: a defensive contest evaluates the whole pool.
	pool := []Entrant{midfielder(1, 80), midfielder(2, 70)}
	var buf Buffer
	if n := SelectTopK(pool, ContestDefense, 6, &buf); n != 2 {
		t.Fatalf("fallback should select from full pool, got %d", n)
	}
}

func TestSelectTopK_EligibilityFilter(t *testing.T) {
	back := Entrant{
		ID: 9, Position: model.FullBack,
		Attr:        &model.Attributes{Tackling: 10, Positioning: 10, WorkRate: 10},
		FatigueMult: 1, InjuryMult: 1,
	}
	// The eligible back wins the defensive selection even though the
	// midfielder would outscore it.
	pool := []Entrant{midfielder(1, 99), back}
	var buf Buffer
	n := SelectTopK(pool, ContestDefense, 1, &buf)
	if n != 1 {
		t.Fatalf("want 1, got %d", n)
	}
	idx, _ := buf.At(0)
	if pool[idx].ID != 9 {
		t.Fatalf("eligibility filter ignored: selected id %d", pool[idx].ID)
	}
}

func TestSelectTopK_EmptyAndInvalid(t *testing.T) {
	var buf Buffer
	if n := SelectTopK(nil, ContestMidfield, 5, &buf); n != 0 {
		t.Fatalf("empty pool: want 0, got %d", n)
	}
	pool := []Entrant{midfielder(1, 80)}
	if n := SelectTopK(pool, ContestMidfield, 0, &buf); n != 0 {
		t.Fatalf("k=0: want 0, got %d", n)
	}
}

func TestSelectTopK_BufferReuse(t *testing.T) {
	pool := []Entrant{
		midfielder(1, 55), midfielder(2, 95), midfielder(3, 75),
		midfielder(4, 85), midfielder(5, 65),
	}
	var reused Buffer
	// Dirty the buffer with a different contest, then re-run and compare
	// against a fresh buffer.
	SelectTopK(pool, ContestForwardEntry, 6, &reused)
	n1 := SelectTopK(pool, ContestMidfield, 3, &reused)

	var fresh Buffer
	n2 := SelectTopK(pool, ContestMidfield, 3, &fresh)

	if n1 != n2 {
		t.Fatalf("reused buffer selected %d, fresh %d", n1, n2)
	}
	for i := 0; i < n1; i++ {
		ri, rs := reused.At(i)
		fi, fs := fresh.At(i)
		if ri != fi || rs != fs {
			t.Fatalf("reuse mismatch at %d: (%d,%v) vs (%d,%v)", i, ri, rs, fi, fs)
		}
	}
}

func BenchmarkSelectTopK(b *testing.B) {
	pool := make([]Entrant, 18)
	for i := range pool {
		pool[i] = midfielder(i+1, float64(40+i*3))
	}
	var buf Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SelectTopK(pool, ContestMidfield, 5, &buf)
	}
}
