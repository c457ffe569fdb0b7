package ladder

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/lexicon"
)

// frontier is one side of the search. Keys of paths double as that
// side's visited set; each path runs from the side's root to the key.
type frontier struct {
	side  Side
	paths map[string]Path
	queue []string
}

func newFrontier(side Side, root string) *frontier {
	return &frontier{
		side:  side,
		paths: map[string]Path{root: {root}},
		queue: []string{root},
	}
}

// splice joins a forward path ending at the meeting word's predecessor
// (or at the meeting word itself) with a backward path running end → meet.
func splice(fwd, bwd Path) Path {
	out := make(Path, 0, len(fwd)+len(bwd))
	out = append(out, fwd...)
	return append(out, bwd.reversed()...)
}

// searcher holds the mutable state of one bidirectional search.
type searcher struct {
	lex      *lexicon.Lexicon
	opts     Options
	ctx      context.Context
	fwd, bwd *frontier
	rounds   int
}

func newSearcher(lex *lexicon.Lexicon, start, end string, o Options) *searcher {
	return &searcher{
		lex:  lex,
		opts: o,
		ctx:  o.Ctx,
		fwd:  newFrontier(Forward, start),
		bwd:  newFrontier(Backward, end),
	}
}

// visited returns the total number of words reached on both sides.
func (s *searcher) visited() int {
	return len(s.fwd.paths) + len(s.bwd.paths)
}

// meet builds the full ladder when cur (on side f) discovers nbr already
// owned by the opposite side.
func (s *searcher) meet(f *frontier, cur, nbr string) Path {
	if f.side == Forward {
		return splice(f.paths[cur], s.bwd.paths[nbr])
	}
	return splice(s.fwd.paths[nbr], f.paths[cur])
}

func (s *searcher) other(f *frontier) *frontier {
	if f.side == Forward {
		return s.bwd
	}
	return s.fwd
}

// expand takes cur off f and records its unseen neighbors. It returns a
// non-nil Path as soon as a neighbor is found in the opposite frontier.
func (s *searcher) expand(f *frontier, cur string) Path {
	path := f.paths[cur]
	s.opts.OnExpand(cur, path.Len(), f.side)
	opp := s.other(f)

	for _, nbr := range s.lex.Neighbors(cur) {
		if back, ok := opp.paths[nbr]; ok {
			if !s.opts.exceeds(path.Len() + 1 + back.Len()) {
				return s.meet(f, cur, nbr)
			}
			continue
		}
		if _, seen := f.paths[nbr]; seen {
			continue
		}
		if s.opts.exceeds(path.Len() + 1) {
			continue
		}
		f.paths[nbr] = path.extend(nbr)
		f.queue = append(f.queue, nbr)
	}
	return nil
}

// cancelled performs a non-blocking context check.
func (s *searcher) cancelled() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// firstFound alternates one dequeued word per side per round and returns
// the first meeting. The two frontiers may advance at different radii, so
// the ladder is not guaranteed to be the shortest.
func (s *searcher) firstFound() (Path, error) {
	for len(s.fwd.queue) > 0 && len(s.bwd.queue) > 0 {
		if err := s.cancelled(); err != nil {
			return nil, err
		}
		s.rounds++
		for _, f := range []*frontier{s.fwd, s.bwd} {
			if len(f.queue) == 0 {
				return nil, ErrUnreachable
			}
			cur := f.queue[0]
			f.queue = f.queue[1:]
			if p := s.expand(f, cur); p != nil {
				return p, nil
			}
		}
	}
	return nil, ErrUnreachable
}

// strictShortest expands a whole layer of the smaller frontier per round.
//
// Invariant: before each round the visited sets are disjoint and every
// word at forward depth ≤ df or backward depth ≤ db is recorded, so the
// true distance is at least df+db+1. Any meeting discovered while
// expanding layer df therefore has length exactly df+db+1.
func (s *searcher) strictShortest() (Path, error) {
	df, db := 0, 0
	for len(s.fwd.queue) > 0 && len(s.bwd.queue) > 0 {
		if s.opts.exceeds(df + db + 1) {
			return nil, ErrUnreachable
		}
		s.rounds++

		f := s.fwd
		if len(s.bwd.queue) < len(s.fwd.queue) {
			f = s.bwd
		}
		layer := f.queue
		f.queue = nil
		for _, cur := range layer {
			if err := s.cancelled(); err != nil {
				return nil, err
			}
			if p := s.expand(f, cur); p != nil {
				return p, nil
			}
		}
		if f.side == Forward {
			df++
		} else {
			db++
		}
	}
	return nil, ErrUnreachable
}

// bidirectional runs the chosen two-sided strategy and logs a summary.
// start and end must already be validated, distinct, and of equal length.
func bidirectional(lex *lexicon.Lexicon, start, end string, o Options) (Path, error) {
	s := newSearcher(lex, start, end, o)

	var (
		p   Path
		err error
	)
	if o.Strategy == FirstFound {
		p, err = s.firstFound()
	} else {
		p, err = s.strictShortest()
	}

	o.Logger.WithFields(logrus.Fields{
		"start":    start,
		"end":      end,
		"strategy": o.Strategy.String(),
		"rounds":   s.rounds,
		"visited":  s.visited(),
		"length":   p.Len(),
	}).Debug("ladder search finished")

	return p, err
}
