package ladder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/lexicon"
)

// Solver answers ladder queries against one immutable lexicon.
// It holds no per-query state and is safe for concurrent use.
type Solver struct {
	lex  *lexicon.Lexicon
	opts Options
}

// NewSolver binds lex with default Options for every query.
// Returns ErrLexiconNil or ErrOptionViolation.
func NewSolver(lex *lexicon.Lexicon, opts ...Option) (*Solver, error) {
	if lex == nil {
		return nil, ErrLexiconNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Solver{lex: lex, opts: o}, nil
}

// Lexicon returns the lexicon the solver searches.
func (s *Solver) Lexicon() *lexicon.Lexicon {
	return s.lex
}

// Strategy returns the configured expansion scheme.
func (s *Solver) Strategy() Strategy {
	return s.opts.Strategy
}

// Find returns a ladder from start to end using the solver's context.
// On failure the Path is nil and the error is ErrEmptyInput,
// ErrUnknownWord, ErrUnreachable, or a context error.
func (s *Solver) Find(start, end string) (Path, error) {
	return s.FindContext(s.opts.Ctx, start, end)
}

// FindContext is Find with an explicit context.
func (s *Solver) FindContext(ctx context.Context, start, end string) (Path, error) {
	o := s.opts
	if ctx != nil {
		o.Ctx = ctx
	}

	start, end, err := prepare(s.lex, start, end)
	if err != nil || start == end {
		return selfOrNil(start, err)
	}
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: %q and %q differ in length", ErrUnreachable, start, end)
	}

	if o.Strategy == SingleSource {
		return bfs(s.lex, start, end, o)
	}
	return bidirectional(s.lex, start, end, o)
}

// prepare rejects empty input, normalizes both words, and checks membership.
func prepare(lex *lexicon.Lexicon, start, end string) (string, string, error) {
	if lex == nil {
		return "", "", ErrLexiconNil
	}
	if start == "" || end == "" {
		return "", "", ErrEmptyInput
	}
	start, end = lexicon.Normalize(start), lexicon.Normalize(end)
	if start == "" || end == "" {
		return "", "", ErrEmptyInput
	}
	for _, w := range []string{start, end} {
		if !lex.Contains(w) {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}
	return start, end, nil
}

// selfOrNil finishes the early-exit cases of prepare: an error, or the
// single-word ladder when start == end.
func selfOrNil(start string, err error) (Path, error) {
	if err != nil {
		return nil, err
	}
	return Path{start}, nil
}
