package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNormalizes(t *testing.T) {
	lex := New("test", []string{"cat", "Dog", "CAT", ""})
	assert.Equal(t, 2, lex.NumWords())
	assert.True(t, lex.HasWord("CAT"))
	assert.True(t, lex.HasWord("DOG"))
	assert.False(t, lex.HasWord("cat"))
}

func TestRead(t *testing.T) {
	r := strings.NewReader("apple\nbanana\ncherry\n")
	lex, err := Read("fruits", r)
	assert.NoError(t, err)
	assert.Equal(t, 3, lex.NumWords())
	assert.True(t, lex.HasWord("BANANA"))
	assert.Equal(t, "fruits", lex.Name())
}

func TestWordsSorted(t *testing.T) {
	lex := New("test", []string{"ZOO", "ANT", "MOO"})
	assert.Equal(t, []string{"ANT", "MOO", "ZOO"}, lex.Words())
}

func TestEmptyLexicon(t *testing.T) {
	lex := New("empty", nil)
	assert.Equal(t, 0, lex.NumWords())
	assert.False(t, lex.HasWord("ANYTHING"))
}
