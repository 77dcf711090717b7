package engine

// assemble builds the output buffer from src and the queued matches.
//
// The output is allocated at its exact final length, len(src)+q.delta,
// in one step. The queue's records are walked in position order, copying
// each unmatched span and splicing in the replacement value; running
// delta tracks how far output offsets have drifted from source offsets.
//
// With nullTerminate one extra byte is allocated and left 0; the returned
// slice keeps the logical length, so the terminator is only reachable
// through the spare capacity byte.
func assemble(src []byte, q *matchQueue, nullTerminate bool) []byte {
	n := len(src) + q.delta
	extra := 0
	if nullTerminate {
		extra = 1
	}
	out := make([]byte, n+extra)[:n]

	if q.len() == 0 {
		copy(out, src)
		return out
	}

	cursor := 0 // next source byte not yet copied
	delta := 0  // output offset minus source offset so far
	for i := range q.records {
		rec := &q.records[i]
		copy(out[cursor+delta:], src[cursor:rec.Pos])
		copy(out[rec.Pos+delta:], rec.Pair.Value)
		cursor = rec.End()
		delta += rec.Pair.Delta()
	}
	copy(out[cursor+delta:], src[cursor:])
	return out
}
