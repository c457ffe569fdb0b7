// Package lexicon defines core types, options, and sentinel errors
// for the lexicon subpackage of github.com/katalvlaran/wordladder.
package lexicon

import (
	"errors"
	"fmt"
)

// Sentinel errors for lexicon construction and loading.
var (
	// ErrInvalidWord indicates an entry that is empty or contains a non a–z letter.
	ErrInvalidWord = errors.New("lexicon: word must be non-empty and contain only letters a-z")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lexicon: invalid option supplied")
	// ErrRead indicates the dictionary source could not be read.
	ErrRead = errors.New("lexicon: failed to read dictionary")
)

// Alphabet is the fixed substitution alphabet, in enumeration order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// wildcard replaces one position of a word to form a bucket pattern.
const wildcard = '*'

// Option configures Lexicon construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters used to build a Lexicon.
type Options struct {
	// MinLength, if > 0, drops words shorter than this.
	MinLength int

	// MaxLength, if > 0, drops words longer than this.
	MaxLength int

	// SkipInvalid drops malformed entries instead of failing New.
	SkipInvalid bool

	// WildcardIndex precomputes pattern buckets for neighbor lookup.
	WildcardIndex bool

	err error
}

// DefaultOptions returns Options with no length bounds, strict validation
// and no wildcard index.
func DefaultOptions() Options {
	return Options{}
}

// WithLengthRange keeps only words whose length lies in [minLen, maxLen].
// A zero bound is unbounded on that side.
func WithLengthRange(minLen, maxLen int) Option {
	return func(o *Options) {
		switch {
		case minLen < 0 || maxLen < 0:
			o.err = fmt.Errorf("%w: length bounds cannot be negative (%d, %d)", ErrOptionViolation, minLen, maxLen)
		case minLen > 0 && maxLen > 0 && minLen > maxLen:
			o.err = fmt.Errorf("%w: min length %d exceeds max length %d", ErrOptionViolation, minLen, maxLen)
		default:
			o.MinLength, o.MaxLength = minLen, maxLen
		}
	}
}

// WithSkipInvalid silently drops malformed entries.
func WithSkipInvalid() Option {
	return func(o *Options) { o.SkipInvalid = true }
}

// WithWildcardIndex enables the precomputed pattern → words index.
func WithWildcardIndex() Option {
	return func(o *Options) { o.WildcardIndex = true }
}

// Lexicon is an immutable set of lowercase words, grouped by length.
// All methods are safe for concurrent use; nothing mutates after New.
type Lexicon struct {
	words    map[string]struct{}
	byLength map[int][]string    // sorted
	buckets  map[string][]string // pattern → sorted words; nil unless indexed
	opts     Options
}
