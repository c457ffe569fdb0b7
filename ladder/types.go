// Package ladder provides tunable options, result types, and error
// definitions for word-ladder search over a lexicon.Lexicon.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/lexicon"
)

// Sentinel errors. ErrEmptyInput, ErrUnknownWord and ErrUnreachable are the
// three NoResult conditions; see IsNoResult.
var (
	// ErrEmptyInput is returned when start or end is empty.
	ErrEmptyInput = errors.New("ladder: start and end must be non-empty")

	// ErrUnknownWord is returned when a normalized endpoint is not in the lexicon.
	ErrUnknownWord = errors.New("ladder: word not in lexicon")

	// ErrUnreachable is returned when no ladder connects two valid words.
	ErrUnreachable = errors.New("ladder: no ladder connects the words")

	// ErrLexiconNil is returned if a nil lexicon is passed.
	ErrLexiconNil = errors.New("ladder: lexicon is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// IsNoResult reports whether err is one of the NoResult conditions.
func IsNoResult(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrUnknownWord) ||
		errors.Is(err, ErrUnreachable)
}

// Strategy selects how the search alternates between its two frontiers.
type Strategy int

const (
	// StrictShortest expands one full layer per side per round and always
	// returns a ladder of minimum length.
	StrictShortest Strategy = iota
	// FirstFound alternates one dequeued word per side per round and
	// returns the first meeting; the ladder may be longer than the shortest.
	FirstFound
	// SingleSource runs a plain breadth-first search from start only.
	SingleSource
)

var strategyNames = map[Strategy]string{
	StrictShortest: "strict-shortest",
	FirstFound:     "first-found",
	SingleSource:   "bfs",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Side identifies which frontier a word was expanded from.
type Side int

const (
	// Forward grows from the start word.
	Forward Side = iota
	// Backward grows from the end word.
	Backward
)

func (s Side) String() string {
	if s == Backward {
		return "backward"
	}
	return "forward"
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects the expansion scheme.
	Strategy Strategy

	// MaxDepth, if > 0, treats ladders with more than MaxDepth edges
	// as unreachable. 0 disables the limit.
	MaxDepth int

	// OnExpand is called for each word taken off a queue, with its
	// distance from that side's root.
	OnExpand func(word string, depth int, side Side)

	// Logger receives debug summaries of each search.
	Logger logrus.FieldLogger

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - StrictShortest strategy
//   - no depth limit
//   - no-op OnExpand hook
//   - a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrictShortest,
		MaxDepth: 0,
		OnExpand: func(string, int, Side) {},
		Logger:   discard,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the expansion scheme.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if _, ok := strategyNames[s]; !ok {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithMaxDepth bounds the ladder length in edges.
//
//	d > 0: ladders longer than d edges are unreachable
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnExpand registers a callback run for every expanded word.
func WithOnExpand(fn func(word string, depth int, side Side)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// exceeds reports whether a ladder with the given edge count breaks MaxDepth.
func (o Options) exceeds(edges int) bool {
	return o.MaxDepth > 0 && edges > o.MaxDepth
}

// Path is an ordered ladder from start to end.
type Path []string

// Len returns the number of edges (steps) in the ladder.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) String() string {
	return strings.Join(p, " → ")
}

// Validate checks that every word is in lx, no word repeats, and each
// consecutive pair is one substitution apart.
func (p Path) Validate(lx *lexicon.Lexicon) error {
	if len(p) == 0 {
		return errors.New("ladder: empty path")
	}
	seen := make(map[string]bool, len(p))
	for i, w := range p {
		if !lx.Contains(w) {
			return fmt.Errorf("ladder: step %d %q not in lexicon", i, w)
		}
		if seen[w] {
			return fmt.Errorf("ladder: step %d repeats %q", i, w)
		}
		seen[w] = true
		if i > 0 && !lexicon.Adjacent(p[i-1], w) {
			return fmt.Errorf("ladder: %q → %q is not a single substitution", p[i-1], w)
		}
	}
	return nil
}

// reversed returns a reversed copy of p.
func (p Path) reversed() Path {
	out := make(Path, len(p))
	for i, w := range p {
		out[len(p)-1-i] = w
	}
	return out
}

// extend returns a copy of p with w appended; p is never aliased.
func (p Path) extend(w string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, w)
}
