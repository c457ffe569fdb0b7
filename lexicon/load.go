package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// fallbackWords is the built-in dictionary used when no word file exists.
var fallbackWords = []string{"help", "heal", "head", "tail", "tell", "tall"}

// Read builds a Lexicon from r, one word per line. Blank lines and lines
// starting with '#' are ignored; malformed entries are always skipped.
// Scanner failures are wrapped in ErrRead.
func Read(r io.Reader, opts ...Option) (*Lexicon, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return New(words, append(opts, WithSkipInvalid())...)
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Fallback returns the small built-in lexicon.
func Fallback(opts ...Option) *Lexicon {
	lx, err := New(fallbackWords, opts...)
	if err != nil {
		// only reachable through a bad caller Option; keep the words.
		lx, _ = New(fallbackWords)
	}
	return lx
}
