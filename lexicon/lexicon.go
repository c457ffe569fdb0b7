// Package lexicon holds the fixed dictionary a word ladder may pass through
// and treats it as an implicit graph: words are vertices, and two words are
// adjacent when they have equal length and differ in exactly one position.
package lexicon

import (
	"fmt"
	"slices"
	"strings"
)

// New builds a Lexicon from words. Each entry is trimmed and lowercased;
// duplicates under case folding collapse to one entry.
// Returns ErrOptionViolation for bad options and ErrInvalidWord for a
// malformed entry unless WithSkipInvalid is set.
// Complexity: O(N×L) time, plus O(N×L) memory for the wildcard index.
func New(words []string, opts ...Option) (*Lexicon, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	lx := &Lexicon{
		words:    make(map[string]struct{}, len(words)),
		byLength: make(map[int][]string),
		opts:     o,
	}
	for _, raw := range words {
		w := Normalize(raw)
		if !valid(w) {
			if o.SkipInvalid {
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, raw)
		}
		if !o.inRange(len(w)) {
			continue
		}
		if _, dup := lx.words[w]; dup {
			continue
		}
		lx.words[w] = struct{}{}
		lx.byLength[len(w)] = append(lx.byLength[len(w)], w)
	}
	for _, group := range lx.byLength {
		slices.Sort(group)
	}
	if o.WildcardIndex {
		lx.buildIndex()
	}

	return lx, nil
}

// Normalize lowercases and trims s. It does not validate.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// valid reports whether w is non-empty and drawn from Alphabet.
func valid(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

func (o Options) inRange(n int) bool {
	if o.MinLength > 0 && n < o.MinLength {
		return false
	}
	if o.MaxLength > 0 && n > o.MaxLength {
		return false
	}
	return true
}

// Contains reports exact membership. The argument is not normalized.
func (lx *Lexicon) Contains(w string) bool {
	_, ok := lx.words[w]
	return ok
}

// Len returns the number of distinct words.
func (lx *Lexicon) Len() int {
	return len(lx.words)
}

// Indexed reports whether the wildcard index was built.
func (lx *Lexicon) Indexed() bool {
	return lx.buckets != nil
}

// Lengths returns the distinct word lengths, ascending.
func (lx *Lexicon) Lengths() []int {
	out := make([]int, 0, len(lx.byLength))
	for n := range lx.byLength {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// WordsOfLength returns a sorted copy of all words of length n.
func (lx *Lexicon) WordsOfLength(n int) []string {
	return slices.Clone(lx.byLength[n])
}

// Words returns every word, sorted by length and then lexically.
func (lx *Lexicon) Words() []string {
	out := make([]string, 0, len(lx.words))
	for _, n := range lx.Lengths() {
		out = append(out, lx.byLength[n]...)
	}
	return out
}
