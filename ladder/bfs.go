package ladder

import (
	"context"

	"github.com/katalvlaran/wordladder/lexicon"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable single-source BFS state.
type walker struct {
	lex    *lexicon.Lexicon
	opts   Options
	ctx    context.Context
	queue  []queueItem
	depth  map[string]int
	parent map[string]string
}

func newWalker(lex *lexicon.Lexicon, root string, o Options) *walker {
	w := &walker{
		lex:    lex,
		opts:   o,
		ctx:    o.Ctx,
		depth:  make(map[string]int),
		parent: make(map[string]string),
	}
	w.enqueue(root, 0, "")
	return w
}

// enqueue records word at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(word string, d int, parent string) {
	w.depth[word] = d
	if parent != "" {
		w.parent[word] = parent
	}
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// run processes the queue until it empties, target is reached, or the
// context is cancelled. An empty target explores the whole component.
func (w *walker) run(target string) error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnExpand(item.word, item.depth, Forward)

		next := item.depth + 1
		if w.opts.exceeds(next) {
			continue
		}
		for _, nbr := range w.lex.Neighbors(item.word) {
			if _, seen := w.depth[nbr]; seen {
				continue
			}
			w.enqueue(nbr, next, item.word)
			if nbr == target {
				return nil
			}
		}
	}
	return nil
}

// pathTo rebuilds the root → dest path from parent links.
func (w *walker) pathTo(dest string) (Path, error) {
	if _, ok := w.depth[dest]; !ok {
		return nil, ErrUnreachable
	}
	path := Path{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	return path.reversed(), nil
}

// BFS finds a shortest ladder with a plain single-source breadth-first
// search. It applies the same validation as Solver.Find and serves as the
// reference for the bidirectional strategies.
// Complexity: O(V·L·26) time, O(V) memory.
func BFS(lex *lexicon.Lexicon, start, end string, opts ...Option) (Path, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start, end, err = prepare(lex, start, end)
	if err != nil || start == end {
		return selfOrNil(start, err)
	}
	return bfs(lex, start, end, o)
}

func bfs(lex *lexicon.Lexicon, start, end string, o Options) (Path, error) {
	if len(start) != len(end) {
		return nil, ErrUnreachable
	}
	w := newWalker(lex, start, o)
	if err := w.run(end); err != nil {
		return nil, err
	}
	return w.pathTo(end)
}

// Distances returns the ladder distance from start to every word in its
// connected component. start is normalized and must be in lex.
func Distances(lex *lexicon.Lexicon, start string, opts ...Option) (map[string]int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if lex == nil {
		return nil, ErrLexiconNil
	}
	start = lexicon.Normalize(start)
	if start == "" {
		return nil, ErrEmptyInput
	}
	if !lex.Contains(start) {
		return nil, ErrUnknownWord
	}
	w := newWalker(lex, start, o)
	if err := w.run(""); err != nil {
		return nil, err
	}
	return w.depth, nil
}
