package engine

import "github.com/coregx/multireplace/pattern"

// Match is one accepted occurrence of a pattern's key.
type Match struct {
	// Pos is the offset of the key's first byte in the source buffer.
	Pos int

	// Pair is the substitution rule that matched.
	Pair *pattern.Pair
}

// End returns the offset just past the matched key.
func (m Match) End() int {
	return m.Pos + len(m.Pair.Key)
}

// matchQueue records the non-overlapping matches chosen during a scan, in
// strictly increasing position order, together with the net length change
// they induce on the output.
//
// Growth is capped additive rather than doubling: a full queue gains
// min(capacity, growthCap) slots. Doubling would be simpler, but for very
// large match counts the cap bounds how much memory each reallocation
// moves.
type matchQueue struct {
	records   []Match
	delta     int // running sum of len(value)-len(key) over records
	growthCap int
}

func newMatchQueue(initialCap, growthCap int) *matchQueue {
	return &matchQueue{
		records:   make([]Match, 0, initialCap),
		growthCap: growthCap,
	}
}

// push appends a record. Records must arrive in increasing position order
// with no overlap; the scanner's non-overlap stream guarantees this.
func (q *matchQueue) push(pos int, p *pattern.Pair) {
	if len(q.records) == cap(q.records) {
		q.grow()
	}
	q.records = append(q.records, Match{Pos: pos, Pair: p})
	q.delta += p.Delta()
}

func (q *matchQueue) grow() {
	step := cap(q.records)
	if step > q.growthCap {
		step = q.growthCap
	}
	if step == 0 {
		step = 1
	}
	next := make([]Match, len(q.records), cap(q.records)+step)
	copy(next, q.records)
	q.records = next
}

func (q *matchQueue) len() int {
	return len(q.records)
}
