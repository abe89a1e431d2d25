package engine

import (
	"fmt"

	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
)

// ContestType identifies which unit strength is being computed.
type ContestType int

const (
	ContestMidfield ContestType = iota
	ContestForwardEntry
	ContestDefense
)

func (c ContestType) String() string {
	switch c {
	case ContestMidfield:
		return "midfield"
	case ContestForwardEntry:
		return "forward_entry"
	case ContestDefense:
		return "defense"
	default:
		return fmt.Sprintf("contest(%d)", int(c))
	}
}

// K returns the selection size for the contest type.
func (c ContestType) K() int {
	if c == ContestMidfield {
		return 5
	}
	return 6
}

// Entrant is the selector's read-only view of an on-field player: static
// attributes plus the two derived multipliers refreshed each tick.
type Entrant struct {
	ID          int
	Position    model.Position
	Attr        *model.Attributes
	FatigueMult float64
	InjuryMult  float64
}

// WeightedScore is the contest-specific attribute blend used both to order
// the selection and as the base of the unit strength. The weights are fixed;
// they are the model, not configuration.
func WeightedScore(c ContestType, a *model.Attributes) float64 {
	switch c {
	case ContestMidfield:
		return 0.45*a.Clearance + 0.25*a.Strength + 0.15*a.Positioning + 0.15*a.DecisionMaking
	case ContestForwardEntry:
		return 0.50*a.Marking + 0.30*a.Kicking + 0.20*a.DecisionMaking
	case ContestDefense:
		return 0.50*a.Tackling + 0.30*a.Positioning + 0.20*a.WorkRate
	default:
		return 0
	}
}

// eligible reports whether a position contests this ball type. When nobody
// on the field matches, the selector falls back to the whole pool.
func eligible(c ContestType, p model.Position) bool {
	switch c {
	case ContestMidfield:
		return p == model.Ruck || p == model.Midfield || p == model.Wing
	case ContestForwardEntry:
		return p == model.HalfForward || p == model.FullForward || p == model.Wing
	case ContestDefense:
		return p == model.HalfBack || p == model.FullBack
	default:
		return true
	}
}

// MaxSelection bounds the top-K buffer. The largest contest uses k=6.
const MaxSelection = 8

// Buffer is the reusable top-K workspace. Selection runs on the order of a
// thousand times per match, so the buffer is owned by the caller and reused
// across calls; SelectTopK never allocates.
type Buffer struct {
	idx    [MaxSelection]int // index into the pool passed to SelectTopK
	ids    [MaxSelection]int
	scores [MaxSelection]float64
	n      int
}

// Len returns the number of entries held after the last SelectTopK.
func (b *Buffer) Len() int { return b.n }

// At returns the pool index and score of the i-th ranked entry.
func (b *Buffer) At(i int) (poolIdx int, score float64) {
	return b.idx[i], b.scores[i]
}

// SelectTopK fills buf with the top k pool entries for the contest type,
// descending by weighted score with ascending player ID breaking ties, and
// returns the number selected (min(k, candidates)). Ordering is a bounded
// insert-and-shift rather than a full sort: k is at most 6 and the pool is
// at most a field side, so this beats sorting and stays allocation-free.
//
// Only position-eligible players are considered; if none are eligible the
// full pool is evaluated instead.
func SelectTopK(pool []Entrant, c ContestType, k int, buf *Buffer) int {
	if k > MaxSelection {
		k = MaxSelection
	}
	buf.n = 0
	if k <= 0 || len(pool) == 0 {
		return 0
	}

	n := selectFrom(pool, c, k, buf, true)
	if n == 0 {
		n = selectFrom(pool, c, k, buf, false)
	}
	return n
}

func selectFrom(pool []Entrant, c ContestType, k int, buf *Buffer, filter bool) int {
	buf.n = 0
	for i := range pool {
		p := &pool[i]
		if filter && !eligible(c, p.Position) {
			continue
		}
		score := WeightedScore(c, p.Attr)

		// Find the insertion slot: strictly better score, or equal score
		// with a lower ID, displaces the entry at that slot.
		pos := buf.n
		for j := 0; j < buf.n; j++ {
			if score > buf.scores[j] || (score == buf.scores[j] && p.ID < buf.ids[j]) {
				pos = j
				break
			}
		}
		if pos >= k {
			continue
		}
		end := buf.n
		if end >= k {
			end = k - 1
		}
		for j := end; j > pos; j-- {
			buf.idx[j] = buf.idx[j-1]
			buf.ids[j] = buf.ids[j-1]
			buf.scores[j] = buf.scores[j-1]
		}
		buf.idx[pos] = i
		buf.ids[pos] = p.ID
		buf.scores[pos] = score
		if buf.n < k {
			buf.n++
		}
	}
	return buf.n
}
