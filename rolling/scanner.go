// Package rolling implements a multi-pattern Karp-Rabin search engine.
//
// The scanner walks the source buffer once, maintaining one rolling hash
// per distinct key length. At each position every still-fitting pattern is
// tested with a hash comparison first and a byte comparison second, so
// hash collisions never produce false matches. The cost per position is
// proportional to the number of distinct key lengths, not to the number of
// patterns: equal-length patterns share their window hash.
//
// Two match streams are produced in the same pass:
//   - the any-match stream reports every verified occurrence, including
//     overlapping ones
//   - the non-overlap stream reports the left-to-right sequence of
//     occurrences that do not intersect, with the longest key winning
//     when several keys start at the same position
package rolling

import (
	"bytes"

	"github.com/coregx/multireplace/pattern"
)

// MatchFunc is invoked for each verified match. pos is the offset of the
// key's first byte in src. Returning false stops the scan immediately.
type MatchFunc func(src []byte, pos int, p *pattern.Pair) bool

// Scanner scans byte buffers for every pattern in a table.
//
// A Scanner holds no per-scan state; all scratch space lives in Scan's
// frame, so one Scanner is safe for concurrent use.
type Scanner struct {
	table *pattern.Table
}

// NewScanner returns a Scanner over the given table.
func NewScanner(table *pattern.Table) *Scanner {
	return &Scanner{table: table}
}

// Scan walks src once and reports matches to the callbacks.
//
// onAny receives every verified occurrence in scan order: by position, and
// within a position by key length descending. onNonOverlap receives only
// occurrences that start at or past the end of the previously accepted
// occurrence; the first verified key at a position claims it, so shorter
// keys starting there are suppressed from this stream (but still visible
// to onAny). Either callback may be nil; if both are nil the call is a
// no-op.
//
// A window is only tested while it can still slide one position further:
// an entry is retired for good once pos reaches len(src)-len(key), so an
// occurrence ending exactly at the buffer end is never reported. Patterns
// longer than src are excluded up front. Scan performs no allocation
// beyond its hash scratch and returns no errors.
func (s *Scanner) Scan(src []byte, onAny, onNonOverlap MatchFunc) {
	if onAny == nil && onNonOverlap == nil {
		return
	}

	// Keys longer than the whole buffer can never fit. Entries are sorted
	// longest first, so they form a prefix.
	entries := s.table.Entries()
	for len(entries) > 0 && len(entries[0].Pair.Key) > len(src) {
		entries = entries[1:]
	}
	if len(entries) == 0 {
		return
	}

	// Seed each entry's hash with src[0:len(key)], computed once per
	// distinct key length.
	hashes := make([]uint64, len(entries))
	seedLen := -1
	var seed uint64
	for i := range entries {
		n := len(entries[i].Pair.Key)
		if n != seedLen {
			seed = pattern.HashOf(src[:n])
			seedLen = n
		}
		hashes[i] = seed
	}

	shortest := len(entries[len(entries)-1].Pair.Key)
	next := 0  // first position not covered by the last accepted match
	start := 0 // entries below this index are retired

	for pos := 0; pos < len(src)-shortest; pos++ {
		for m := start; m < len(entries); m++ {
			e := &entries[m]
			n := len(e.Pair.Key)

			// Retirement is monotonic: windows shrink as pos advances and
			// longer keys sit earlier in the table, so a retired prefix
			// never becomes eligible again.
			if pos >= len(src)-n {
				start = m + 1
				continue
			}

			// cur is the hash of src[pos:pos+n]; hashes[m] advances to the
			// next position. Equal-length neighbors share the slide.
			cur := hashes[m]
			if m > start && len(entries[m-1].Pair.Key) == n {
				hashes[m] = hashes[m-1]
			} else {
				hashes[m] = pattern.Slide(cur, src[pos], src[pos+n], e.RemCoef)
			}

			// Positions inside the last accepted match only matter to the
			// any-match stream.
			if onAny == nil && pos < next {
				continue
			}
			if cur != e.KeyHash || !bytes.Equal(e.Pair.Key, src[pos:pos+n]) {
				continue
			}

			if onAny != nil && !onAny(src, pos, e.Pair) {
				return
			}
			if pos >= next {
				if onNonOverlap != nil && !onNonOverlap(src, pos, e.Pair) {
					return
				}
				next = pos + n
			}
		}
	}
}
