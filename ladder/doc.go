// Package ladder finds a shortest word ladder between two words of a
// lexicon.Lexicon: a sequence of dictionary words in which each step
// substitutes exactly one letter.
//
// What
//
//   - Solver validates and normalizes input, answers start == end with the
//     one-word ladder, and delegates to the configured Strategy.
//   - StrictShortest (default) grows two frontiers, one from each end, a
//     full layer at a time, always expanding the smaller side. The first
//     meeting yields a ladder of minimum length.
//   - FirstFound alternates one word per side per round, as the classic
//     per-node bidirectional search does. It can return a longer ladder
//     when one side's queue drains faster than the other's.
//   - SingleSource (and the BFS function) run a plain breadth-first search
//     from start. It is the reference the other strategies are tested against.
//
// Determinism
//
//	lexicon.Neighbors enumerates by position, then letter. Every strategy
//	expands in that order, so repeated queries return the same ladder.
//
// Complexity (V = words of the query length, L = word length)
//
//   - Time:   O(V·L·26) worst case; bidirectional search usually touches
//     far fewer words than a single-source search.
//   - Memory: O(V·d) for the stored half-paths, d = ladder length.
//
// Usage
//
//	lx, _ := lexicon.New([]string{"cat", "cot", "cog", "dog"})
//	s, _ := ladder.NewSolver(lx)
//	path, err := s.Find("CAT", "dog")
//	if ladder.IsNoResult(err) {
//	    // one of ErrEmptyInput, ErrUnknownWord, ErrUnreachable
//	}
//	fmt.Println(path) // cat → cot → cog → dog
//
// Options
//
//   - WithContext(ctx):      cancellation and deadlines.
//   - WithStrategy(s):       StrictShortest, FirstFound, or SingleSource.
//   - WithMaxDepth(d):       ladders longer than d edges are unreachable.
//   - WithOnExpand(fn):      hook for every word taken off a queue.
//   - WithLogger(l):         logrus logger for per-search debug summaries.
//
// Errors
//
//   - ErrEmptyInput       start or end is empty.
//   - ErrUnknownWord      a normalized endpoint is not in the lexicon.
//   - ErrUnreachable      no ladder exists (including differing lengths).
//   - ErrLexiconNil       a nil lexicon was supplied.
//   - ErrOptionViolation  an invalid Option was supplied.
package ladder
