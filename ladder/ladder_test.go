package ladder_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

var strategies = []ladder.Strategy{ladder.StrictShortest, ladder.FirstFound, ladder.SingleSource}

// sampleWords is a small dictionary with several components and lengths.
const sampleWords = `
cold cord card ward warm word worm wore core corn born burn bore wire were
cat cot cog dog dot hot hat hit hog log lot bat bag big bog dig dug hug hum
him hip hop top tip tap cap cop cup pup pun pin pan man men hen pen pet pit
pot put head heal teal tell tall tail hail hall hell help held meld melt malt
salt halt zzz`

func mustLexicon(t testing.TB, words []string, opts ...lexicon.Option) *lexicon.Lexicon {
	t.Helper()
	lx, err := lexicon.New(words, opts...)
	require.NoError(t, err)
	return lx
}

func mustSolver(t testing.TB, lx *lexicon.Lexicon, opts ...ladder.Option) *ladder.Solver {
	t.Helper()
	s, err := ladder.NewSolver(lx, opts...)
	require.NoError(t, err)
	return s
}

// SolverSuite runs the canonical scenarios against every strategy.
type SolverSuite struct {
	suite.Suite
	lx *lexicon.Lexicon
}

func (s *SolverSuite) SetupTest() {
	s.lx = mustLexicon(s.T(), []string{"cat", "cot", "cog", "dog"})
}

// TestCatToDog checks the unique four-word ladder.
func (s *SolverSuite) TestCatToDog() {
	want := ladder.Path{"cat", "cot", "cog", "dog"}
	for _, st := range strategies {
		got, err := mustSolver(s.T(), s.lx, ladder.WithStrategy(st)).Find("cat", "dog")
		require.NoError(s.T(), err, st.String())
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("%s: ladder mismatch (-want +got):\n%s", st, diff)
		}
		require.Equal(s.T(), 3, got.Len())
	}
}

// TestReverseDirection checks the ladder is built end-to-end in both directions.
func (s *SolverSuite) TestReverseDirection() {
	for _, st := range strategies {
		got, err := mustSolver(s.T(), s.lx, ladder.WithStrategy(st)).Find("dog", "cat")
		require.NoError(s.T(), err)
		require.Equal(s.T(), ladder.Path{"dog", "cog", "cot", "cat"}, got, st.String())
	}
}

// TestSelfLadder returns the one-word ladder without searching.
func (s *SolverSuite) TestSelfLadder() {
	for _, st := range strategies {
		calls := 0
		solver := mustSolver(s.T(), s.lx,
			ladder.WithStrategy(st),
			ladder.WithOnExpand(func(string, int, ladder.Side) { calls++ }),
		)
		got, err := solver.Find("cat", "CAT")
		require.NoError(s.T(), err)
		require.Equal(s.T(), ladder.Path{"cat"}, got)
		require.Zero(s.T(), got.Len())
		require.Zero(s.T(), calls, "self ladder must not expand")
	}
}

// TestNormalization accepts mixed-case input and returns lowercase words.
func (s *SolverSuite) TestNormalization() {
	got, err := mustSolver(s.T(), s.lx).Find("CaT", "DOG")
	require.NoError(s.T(), err)
	require.Equal(s.T(), ladder.Path{"cat", "cot", "cog", "dog"}, got)
}

// TestUnknownWord rejects endpoints outside the lexicon.
func (s *SolverSuite) TestUnknownWord() {
	solver := mustSolver(s.T(), s.lx)
	for _, pair := range [][2]string{{"cat", "bat"}, {"bat", "cat"}, {"cat", "c4t"}} {
		got, err := solver.Find(pair[0], pair[1])
		require.Nil(s.T(), got)
		require.ErrorIs(s.T(), err, ladder.ErrUnknownWord)
		require.True(s.T(), ladder.IsNoResult(err))
	}
}

// TestEmptyInput rejects empty and whitespace-only endpoints.
func (s *SolverSuite) TestEmptyInput() {
	solver := mustSolver(s.T(), s.lx)
	for _, pair := range [][2]string{{"", "dog"}, {"cat", ""}, {"", ""}, {"  ", "dog"}} {
		got, err := solver.Find(pair[0], pair[1])
		require.Nil(s.T(), got)
		require.ErrorIs(s.T(), err, ladder.ErrEmptyInput)
	}
}

// TestUnreachable covers a missing bridge word.
func (s *SolverSuite) TestUnreachable() {
	lx := mustLexicon(s.T(), []string{"cat", "cot", "dog"})
	for _, st := range strategies {
		got, err := mustSolver(s.T(), lx, ladder.WithStrategy(st)).Find("cat", "dog")
		require.Nil(s.T(), got)
		require.ErrorIs(s.T(), err, ladder.ErrUnreachable, st.String())
	}
}

// TestLengthMismatch never connects words of different lengths.
func (s *SolverSuite) TestLengthMismatch() {
	lx := mustLexicon(s.T(), []string{"cat", "cats"})
	for _, st := range strategies {
		_, err := mustSolver(s.T(), lx, ladder.WithStrategy(st)).Find("cat", "cats")
		require.ErrorIs(s.T(), err, ladder.ErrUnreachable)
	}

	// a malformed entry is dropped at load time, leaving an unknown word.
	lx = mustLexicon(s.T(), []string{"cat", "cat3"}, lexicon.WithSkipInvalid())
	_, err := mustSolver(s.T(), lx).Find("cat", "cat3")
	require.True(s.T(), ladder.IsNoResult(err))
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestShortestConformance compares every strategy with the BFS oracle
// over all same-length pairs of the sample dictionary.
func TestShortestConformance(t *testing.T) {
	for _, indexed := range []bool{false, true} {
		var lopts []lexicon.Option
		if indexed {
			lopts = append(lopts, lexicon.WithWildcardIndex())
		}
		lx := mustLexicon(t, strings.Fields(sampleWords), lopts...)
		strict := mustSolver(t, lx)
		first := mustSolver(t, lx, ladder.WithStrategy(ladder.FirstFound))

		for _, n := range lx.Lengths() {
			group := lx.WordsOfLength(n)
			for _, a := range group {
				for _, b := range group {
					want, wantErr := ladder.BFS(lx, a, b)

					got, err := strict.Find(a, b)
					require.Equal(t, wantErr, err, "%s→%s", a, b)
					if wantErr != nil {
						require.ErrorIs(t, err, ladder.ErrUnreachable)
						_, ffErr := first.Find(a, b)
						require.ErrorIs(t, ffErr, ladder.ErrUnreachable)
						continue
					}
					require.NoError(t, got.Validate(lx))
					require.Equal(t, want.Len(), got.Len(), "strict %s→%s: %v vs %v", a, b, got, want)
					require.Equal(t, a, got[0])
					require.Equal(t, b, got[len(got)-1])

					ff, err := first.Find(a, b)
					require.NoError(t, err)
					require.NoError(t, ff.Validate(lx))
					require.GreaterOrEqual(t, ff.Len(), want.Len())
				}
			}
		}
	}
}

// TestMaxDepth bounds the ladder length.
func TestMaxDepth(t *testing.T) {
	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog"})
	for _, st := range strategies {
		_, err := mustSolver(t, lx, ladder.WithStrategy(st), ladder.WithMaxDepth(2)).Find("cat", "dog")
		require.ErrorIs(t, err, ladder.ErrUnreachable, st.String())

		got, err := mustSolver(t, lx, ladder.WithStrategy(st), ladder.WithMaxDepth(3)).Find("cat", "dog")
		require.NoError(t, err, st.String())
		require.Equal(t, 3, got.Len())
	}

	_, err := ladder.NewSolver(lx, ladder.WithMaxDepth(-1))
	require.ErrorIs(t, err, ladder.ErrOptionViolation)
}

// TestOnExpand records which side each expanded word came from.
func TestOnExpand(t *testing.T) {
	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog"})
	var got []string
	solver := mustSolver(t, lx,
		ladder.WithStrategy(ladder.FirstFound),
		ladder.WithOnExpand(func(w string, d int, side ladder.Side) {
			got = append(got, side.String()+":"+w)
		}),
	)
	_, err := solver.Find("cat", "dog")
	require.NoError(t, err)
	require.Equal(t, []string{"forward:cat", "backward:dog", "forward:cot"}, got)
}

// TestCancellation verifies that a cancelled context halts the search.
func TestCancellation(t *testing.T) {
	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, st := range strategies {
		_, err := mustSolver(t, lx, ladder.WithStrategy(st)).FindContext(ctx, "cat", "dog")
		require.True(t, errors.Is(err, context.Canceled), "%s: got %v", st, err)
		require.False(t, ladder.IsNoResult(err))
	}
}

// TestConcurrentFind shares one solver between goroutines.
func TestConcurrentFind(t *testing.T) {
	lx := mustLexicon(t, strings.Fields(sampleWords), lexicon.WithWildcardIndex())
	solver := mustSolver(t, lx)
	want, err := solver.Find("cold", "warm")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := solver.Find("cold", "warm")
			if err == nil && !cmp.Equal(want, got) {
				err = errors.New("ladder differs: " + got.String())
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

// TestLogger emits a debug summary per search.
func TestLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog"})
	_, err := mustSolver(t, lx, ladder.WithLogger(logger)).Find("cat", "dog")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, "strict-shortest", entry.Data["strategy"])
	require.Equal(t, 3, entry.Data["length"])
}

// TestNewSolverErrors rejects nil lexicons and unknown strategies.
func TestNewSolverErrors(t *testing.T) {
	_, err := ladder.NewSolver(nil)
	require.ErrorIs(t, err, ladder.ErrLexiconNil)

	_, err = ladder.NewSolver(lexicon.Fallback(), ladder.WithStrategy(ladder.Strategy(42)))
	require.ErrorIs(t, err, ladder.ErrOptionViolation)

	_, err = ladder.BFS(nil, "a", "b")
	require.ErrorIs(t, err, ladder.ErrLexiconNil)
}

// TestParseStrategy round-trips every strategy name.
func TestParseStrategy(t *testing.T) {
	for _, st := range strategies {
		got, err := ladder.ParseStrategy(strings.ToUpper(st.String()))
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	_, err := ladder.ParseStrategy("dfs")
	require.ErrorIs(t, err, ladder.ErrOptionViolation)
}

// TestDistances checks BFS layering from one word.
func TestDistances(t *testing.T) {
	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog", "zzz"})
	got, err := ladder.Distances(lx, "Cat")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"cat": 0, "cot": 1, "cog": 2, "dog": 3}, got)

	_, err = ladder.Distances(lx, "bat")
	require.ErrorIs(t, err, ladder.ErrUnknownWord)
	_, err = ladder.Distances(lx, "")
	require.ErrorIs(t, err, ladder.ErrEmptyInput)
}

// TestPathValidate rejects broken ladders.
func TestPathValidate(t *testing.T) {
	lx := mustLexicon(t, []string{"cat", "cot", "cog", "dog"})
	require.NoError(t, ladder.Path{"cat", "cot"}.Validate(lx))
	require.Error(t, ladder.Path{}.Validate(lx))
	require.Error(t, ladder.Path{"cat", "cog"}.Validate(lx))
	require.Error(t, ladder.Path{"cat", "cot", "cat"}.Validate(lx))
	require.Error(t, ladder.Path{"cat", "bat"}.Validate(lx))
	require.Equal(t, "cat → cot", ladder.Path{"cat", "cot"}.String())
}
