package lexicon

import (
	"slices"
	"strings"
)

// Components partitions the lexicon into connected components under the
// single-substitution relation. Words within a component are sorted;
// components are ordered by descending size, then by first word.
//
// Two words in different components can never be joined by a ladder.
// Time:   O(N·L·26) without the index.
// Memory: O(N) for the seen set and output.
func (lx *Lexicon) Components() [][]string {
	seen := make(map[string]bool, len(lx.words))
	var comps [][]string

	for _, w := range lx.Words() {
		if seen[w] {
			continue
		}
		comps = append(comps, lx.collect(w, seen))
	}
	slices.SortFunc(comps, func(a, b []string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a[0], b[0])
	})
	return comps
}

// ComponentOf returns the sorted component containing word,
// or nil if word is not in the lexicon.
func (lx *Lexicon) ComponentOf(word string) []string {
	if !lx.Contains(word) {
		return nil
	}
	return lx.collect(word, make(map[string]bool))
}

// collect runs a BFS from root, marking every reached word in seen,
// and returns the reached words sorted.
func (lx *Lexicon) collect(root string, seen map[string]bool) []string {
	queue := []string{root}
	seen[root] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range lx.Neighbors(queue[qi]) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	slices.Sort(queue)
	return queue
}
