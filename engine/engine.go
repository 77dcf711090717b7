// Package engine orchestrates multi-pattern search-and-replace: input
// validation, the containment quick-reject, the rolling scan, match
// collection, and output assembly.
//
// The pipeline per call:
//
//	validate source → quick-reject (Aho-Corasick, optional) →
//	rolling scan → match queue → assemble
//
// The quick-reject automaton only answers whether any key occurs anywhere
// in the source; match positions and priorities are always decided by the
// rolling scan.
package engine

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/multireplace/pattern"
	"github.com/coregx/multireplace/rolling"
)

// Engine executes search-and-replace over byte buffers.
//
// An Engine is immutable after New; every call keeps its scratch state
// (rolling hashes, match queue) local, so one Engine is safe for
// concurrent use and independent calls need no synchronization.
type Engine struct {
	table     *pattern.Table
	scanner   *rolling.Scanner
	prefilter *ahocorasick.Automaton // nil when disabled or build failed
	config    Config
}

// New validates pairs and builds an Engine.
//
// Errors: ErrInvalidConfig, or the pattern package's validation errors
// (pattern.ErrNoPairs, pattern.ErrEmptyKey/ErrEmptyValue wrapped in a
// *pattern.PairError).
func New(pairs []pattern.Pair, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	table, err := pattern.NewTable(pairs)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		table:   table,
		scanner: rolling.NewScanner(table),
		config:  config,
	}
	if config.EnablePrefilter {
		e.prefilter = buildPrefilter(table)
	}
	return e, nil
}

// buildPrefilter builds the containment automaton over all keys. A build
// failure disables the quick-reject path instead of failing construction;
// correctness never depends on it.
func buildPrefilter(table *pattern.Table) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, entry := range table.Entries() {
		builder.AddPattern(entry.Pair.Key)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// NumPatterns returns the number of substitution rules in the engine.
func (e *Engine) NumPatterns() int {
	return e.table.Len()
}

// mayMatch reports whether src can contain any key at all. False means a
// scan is guaranteed to find nothing.
func (e *Engine) mayMatch(src []byte) bool {
	return e.prefilter == nil || e.prefilter.IsMatch(src)
}

// Replace returns a new buffer with every accepted occurrence replaced,
// together with the number of replacements applied.
//
// The source is never modified. With no matches the result is a fresh
// byte-for-byte copy of src. Returns ErrEmptySource for a nil or empty
// source; the returned buffer is nil on error.
func (e *Engine) Replace(src []byte) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptySource
	}
	q := newMatchQueue(e.config.InitialQueueCapacity, e.config.QueueGrowthCap)
	if e.mayMatch(src) {
		e.scanner.Scan(src, nil, func(_ []byte, pos int, p *pattern.Pair) bool {
			q.push(pos, p)
			return true
		})
	}
	return assemble(src, q, e.config.NullTerminate), q.len(), nil
}

// FindAll returns every verified occurrence in scan order, including
// overlapping occurrences and shorter keys at an already claimed
// position. Returns nil when nothing matches.
func (e *Engine) FindAll(src []byte) []Match {
	if len(src) == 0 || !e.mayMatch(src) {
		return nil
	}
	var matches []Match
	e.scanner.Scan(src, func(_ []byte, pos int, p *pattern.Pair) bool {
		matches = append(matches, Match{Pos: pos, Pair: p})
		return true
	}, nil)
	return matches
}

// Find returns the first match Replace would apply, or nil. The scan
// stops as soon as the match is verified.
func (e *Engine) Find(src []byte) *Match {
	if len(src) == 0 || !e.mayMatch(src) {
		return nil
	}
	var found *Match
	e.scanner.Scan(src, nil, func(_ []byte, pos int, p *pattern.Pair) bool {
		found = &Match{Pos: pos, Pair: p}
		return false
	})
	return found
}

// Count returns the number of replacements Replace would apply, without
// building the output buffer.
func (e *Engine) Count(src []byte) int {
	if len(src) == 0 || !e.mayMatch(src) {
		return 0
	}
	count := 0
	e.scanner.Scan(src, nil, func([]byte, int, *pattern.Pair) bool {
		count++
		return true
	})
	return count
}

// Contains reports whether a scan of src yields at least one match.
func (e *Engine) Contains(src []byte) bool {
	return e.Find(src) != nil
}
