// Package lexicon holds an immutable set of normalized dictionary words.
package lexicon

import (
	"bufio"
	"io"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Lexicon is an immutable set of uppercase dictionary words.
type Lexicon struct {
	name   string
	words  map[string]struct{}
	sorted []string
}

// New builds a Lexicon from a list of words. Words are uppercased;
// duplicates collapse.
func New(name string, words []string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = upper.String(w)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	sorted := lo.Keys(set)
	sort.Strings(sorted)
	lex := &Lexicon{name: name, words: set, sorted: sorted}
	log.Debug().Str("lexicon", name).Int("words", len(set)).
		Msg("built lexicon")
	return lex
}

// Read builds a Lexicon from a reader with one word per line.
func Read(name string, r io.Reader) (*Lexicon, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(name, words), nil
}

// Name returns the lexicon's name.
func (lex *Lexicon) Name() string {
	return lex.name
}

// HasWord tests membership of an uppercase word.
func (lex *Lexicon) HasWord(word string) bool {
	_, ok := lex.words[word]
	return ok
}

// NumWords returns the number of distinct words.
func (lex *Lexicon) NumWords() int {
	return len(lex.words)
}

// Words returns every word in sorted order. The returned slice is shared;
// callers must not modify it.
func (lex *Lexicon) Words() []string {
	return lex.sorted
}
