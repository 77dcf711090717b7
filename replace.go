// Package multireplace performs simultaneous multi-pattern
// search-and-replace over byte buffers.
//
// Given a set of key/value pairs, a Replacer finds every non-overlapping
// occurrence of any key in a source buffer and produces a new buffer with
// each occurrence replaced by the key's value, in a single pass. The
// search is a Karp-Rabin rolling-hash scan generalized to many patterns
// of differing lengths at once, so cost stays near-linear in the source
// length regardless of the pattern count.
//
// Matching is byte-oriented and binary-safe: no regular expressions, no
// Unicode awareness, no case folding. Overlap resolution is fixed: the
// first position wins scanning left to right, and at a single position
// the longest verifying key wins.
//
// Basic usage:
//
//	r, err := multireplace.New([]multireplace.Pair{
//	    {Key: []byte("cat"), Value: []byte("dog")},
//	    {Key: []byte("bird"), Value: []byte("fish")},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, n, err := r.Replace([]byte("the cat saw a bird fly"))
//	// out = "the dog saw a fish fly", n = 2
//
// A Replacer is immutable once built and safe for concurrent use.
package multireplace

import (
	"errors"

	"github.com/coregx/multireplace/engine"
	"github.com/coregx/multireplace/pattern"
)

// Pair is one substitution rule: every accepted occurrence of Key is
// replaced by Value. Both must be non-empty.
type Pair = pattern.Pair

// Match is one accepted occurrence of a pattern's key.
type Match = engine.Match

// Config controls engine behavior. See the engine package for the
// individual options.
type Config = engine.Config

// Errors returned by New, NewStrings and Replace. Pair validation errors
// carry the offending pair's index; classify with errors.Is.
var (
	ErrNoPairs       = pattern.ErrNoPairs
	ErrEmptyKey      = pattern.ErrEmptyKey
	ErrEmptyValue    = pattern.ErrEmptyValue
	ErrEmptySource   = engine.ErrEmptySource
	ErrInvalidConfig = engine.ErrInvalidConfig

	// ErrOddArguments indicates NewStrings was called with an odd number
	// of strings.
	ErrOddArguments = errors.New("odd argument count: want old, new pairs")
)

// DefaultConfig returns the default configuration. Customize it and pass
// to NewWithConfig.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// Replacer replaces occurrences of a fixed set of keys with their values.
//
// A Replacer is safe for concurrent use by multiple goroutines.
type Replacer struct {
	eng *engine.Engine
}

// New builds a Replacer from substitution pairs with the default
// configuration.
//
// Returns ErrNoPairs for an empty list and a per-pair error wrapping
// ErrEmptyKey or ErrEmptyValue for an invalid pair. The pair list is
// copied; the key/value bytes are borrowed and must stay unchanged while
// the Replacer is in use.
func New(pairs []Pair) (*Replacer, error) {
	return NewWithConfig(pairs, engine.DefaultConfig())
}

// NewWithConfig builds a Replacer with a custom configuration.
//
// Example:
//
//	config := multireplace.DefaultConfig()
//	config.NullTerminate = true
//	r, err := multireplace.NewWithConfig(pairs, config)
func NewWithConfig(pairs []Pair, config Config) (*Replacer, error) {
	eng, err := engine.New(pairs, config)
	if err != nil {
		return nil, err
	}
	return &Replacer{eng: eng}, nil
}

// MustNew builds a Replacer and panics if the pairs are invalid.
//
// This is useful for pair sets known to be valid at compile time.
func MustNew(pairs []Pair) *Replacer {
	r, err := New(pairs)
	if err != nil {
		panic("multireplace: New: " + err.Error())
	}
	return r
}

// NewStrings builds a Replacer from a list of old, new string pairs,
// in the argument style of strings.NewReplacer:
//
//	r, err := multireplace.NewStrings("1", "one", "2", "two")
func NewStrings(oldnew ...string) (*Replacer, error) {
	if len(oldnew)%2 != 0 {
		return nil, ErrOddArguments
	}
	pairs := make([]Pair, 0, len(oldnew)/2)
	for i := 0; i < len(oldnew); i += 2 {
		pairs = append(pairs, Pair{
			Key:   []byte(oldnew[i]),
			Value: []byte(oldnew[i+1]),
		})
	}
	return New(pairs)
}

// Replace returns a newly allocated copy of src with every accepted
// occurrence replaced, and the number of replacements applied.
//
// src is never modified; with no matches the result is still a fresh
// copy. Returns ErrEmptySource for a nil or empty source, with a nil
// buffer.
func (r *Replacer) Replace(src []byte) ([]byte, int, error) {
	return r.eng.Replace(src)
}

// ReplaceString is like Replace but operates on a string.
func (r *Replacer) ReplaceString(s string) (string, int, error) {
	out, n, err := r.eng.Replace([]byte(s))
	if err != nil {
		return "", 0, err
	}
	return string(out), n, nil
}

// Find returns the first match Replace would apply, or nil if there is
// none. The scan stops at the first verified match.
func (r *Replacer) Find(src []byte) *Match {
	return r.eng.Find(src)
}

// FindAll returns every verified occurrence in scan order, including
// overlapping occurrences and shorter keys at positions already claimed
// by a longer key. Returns nil when nothing matches.
func (r *Replacer) FindAll(src []byte) []Match {
	return r.eng.FindAll(src)
}

// Count returns the number of replacements Replace would apply.
func (r *Replacer) Count(src []byte) int {
	return r.eng.Count(src)
}

// Contains reports whether Replace would apply at least one replacement.
func (r *Replacer) Contains(src []byte) bool {
	return r.eng.Contains(src)
}

// NumPatterns returns the number of substitution rules.
func (r *Replacer) NumPatterns() int {
	return r.eng.NumPatterns()
}
