package lexicon

// Neighbors returns the lexicon words one substitution away from word,
// ordered by position ascending and then letter ascending.
// word is expected to be normalized; it need not itself be in the lexicon.
//
// With the wildcard index the lookup is a join over len(word) buckets;
// without it each position is scanned across Alphabet. Both paths yield
// the same slice.
// Complexity: O(L×26) for the scan, O(L×B) with the index (B = bucket size).
func (lx *Lexicon) Neighbors(word string) []string {
	if word == "" {
		return nil
	}
	if lx.buckets != nil {
		return lx.indexedNeighbors(word)
	}

	var out []string
	buf := []byte(word)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for j := 0; j < len(Alphabet); j++ {
			c := Alphabet[j]
			if c == orig {
				continue
			}
			buf[i] = c
			if lx.Contains(string(buf)) {
				out = append(out, string(buf))
			}
		}
		buf[i] = orig
	}
	return out
}

// indexedNeighbors reads the precomputed buckets. Each bucket is sorted,
// and its members differ only at the blanked position, so lexical order
// inside a bucket is letter order at that position.
func (lx *Lexicon) indexedNeighbors(word string) []string {
	var out []string
	buf := []byte(word)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		buf[i] = wildcard
		for _, w := range lx.buckets[string(buf)] {
			if w != word {
				out = append(out, w)
			}
		}
		buf[i] = orig
	}
	return out
}

// buildIndex fills the pattern → words map. Called once from New.
func (lx *Lexicon) buildIndex() {
	lx.buckets = make(map[string][]string, len(lx.words))
	for _, n := range lx.Lengths() {
		// byLength groups are sorted, so each bucket stays sorted.
		for _, w := range lx.byLength[n] {
			buf := []byte(w)
			for i := range buf {
				orig := buf[i]
				buf[i] = wildcard
				key := string(buf)
				lx.buckets[key] = append(lx.buckets[key], w)
				buf[i] = orig
			}
		}
	}
}

// Adjacent reports whether a and b have equal length, differ, and differ
// in exactly one position.
func Adjacent(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
