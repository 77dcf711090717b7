// Package pattern provides the substitution rules for multi-pattern
// search-and-replace: key/value pair validation and the precomputed hash
// metadata the rolling search engine scans with.
//
// A Table is built once from a set of Pairs and is immutable afterwards.
// Entries are ordered by key length, longest first. The ordering is
// load-bearing for the scan:
//   - longer keys stop fitting near the end of the buffer first, so
//     retired entries always form a prefix of the table
//   - the first entry that verifies at a position is the one accepted
//     into the non-overlapping match stream, so the longest key wins
//     when several keys start at the same position
package pattern

import (
	"errors"
	"fmt"
	"sort"
)

// Validation errors returned by NewTable.
var (
	// ErrNoPairs indicates an empty pair list was provided.
	ErrNoPairs = errors.New("no pattern pairs provided")

	// ErrEmptyKey indicates a pair with a zero-length key.
	ErrEmptyKey = errors.New("pattern key is empty")

	// ErrEmptyValue indicates a pair with a zero-length value.
	ErrEmptyValue = errors.New("pattern value is empty")
)

// PairError wraps a pair validation failure with the index of the
// offending pair in the caller's list.
type PairError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *PairError) Error() string {
	return fmt.Sprintf("pattern pair %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *PairError) Unwrap() error {
	return e.Err
}

// Pair is one substitution rule: every accepted occurrence of Key is
// replaced by Value. Both must be non-empty. The table borrows the backing
// arrays; callers must not mutate them while a search is running.
type Pair struct {
	Key   []byte
	Value []byte
}

// Delta returns the length change one replacement of this pair induces.
func (p *Pair) Delta() int {
	return len(p.Value) - len(p.Key)
}

// Entry is one pattern prepared for scanning.
type Entry struct {
	// Pair is the substitution rule this entry was built from.
	Pair *Pair

	// KeyHash is the polynomial hash of the full key.
	KeyHash uint64

	// RemCoef removes the oldest window byte during a slide.
	// See RemovalCoefficient for the degeneration at long keys.
	RemCoef uint64
}

// Table is a validated, ordered set of entries, ready for scanning.
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	pairs   []Pair
	entries []Entry
}

// NewTable validates pairs and builds the entry table.
//
// Returns ErrNoPairs for an empty list, or a *PairError wrapping
// ErrEmptyKey/ErrEmptyValue for the first invalid pair. Validation runs
// before any entry is built, so a failed call allocates nothing lasting.
//
// The pair list is copied; the key/value bytes are not.
func NewTable(pairs []Pair) (*Table, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	for i := range pairs {
		if len(pairs[i].Key) == 0 {
			return nil, &PairError{Index: i, Err: ErrEmptyKey}
		}
		if len(pairs[i].Value) == 0 {
			return nil, &PairError{Index: i, Err: ErrEmptyValue}
		}
	}

	t := &Table{
		pairs:   make([]Pair, len(pairs)),
		entries: make([]Entry, len(pairs)),
	}
	copy(t.pairs, pairs)
	for i := range t.pairs {
		p := &t.pairs[i]
		t.entries[i] = Entry{
			Pair:    p,
			KeyHash: HashOf(p.Key),
			RemCoef: RemovalCoefficient(len(p.Key)),
		}
	}
	// Longest key first. Stable, so equal-length keys keep caller order.
	sort.SliceStable(t.entries, func(i, j int) bool {
		return len(t.entries[i].Pair.Key) > len(t.entries[j].Pair.Key)
	})
	return t, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries sorted by key length descending.
// The returned slice is shared with the table and must not be modified.
func (t *Table) Entries() []Entry {
	return t.entries
}
