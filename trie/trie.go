// Package trie implements the prefix tree the move generator walks one
// letter at a time. It is a simplification of the usual GADDAG/DAWG
// structures: rightward extension only ever needs forward prefixes.
package trie

import (
	"github.com/rs/zerolog/log"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/lexicon"
)

// A Node is a single trie node. Its children slice and letterIndexes
// table are kept mutually consistent: letterIndexes[letter-'A'] holds the
// position of that letter's child in children, or -1 if absent, giving
// O(1) child lookup.
type Node struct {
	letter        byte
	terminal      bool
	children      []*Node
	letterIndexes [alphabet.NumLetters]int8
}

func newNode(letter byte) *Node {
	n := &Node{letter: letter}
	for i := range n.letterIndexes {
		n.letterIndexes[i] = -1
	}
	return n
}

// Letter returns the letter this node was reached by.
func (n *Node) Letter() byte {
	return n.letter
}

// Terminal reports whether a word ends at this node.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Child returns the child for the given uppercase letter, or nil.
func (n *Node) Child(letter byte) *Node {
	idx := n.letterIndexes[letter-'A']
	if idx == -1 {
		return nil
	}
	return n.children[idx]
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Trie is a word trie built once from a lexicon.
type Trie struct {
	root     *Node
	numWords int
}

// The root carries '*' as its letter, matching nothing.
const rootMarker byte = '*'

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode(rootMarker)}
}

// FromLexicon builds a trie from every lexicon word that is at least
// three letters long and entirely A-Z. Shorter or accented words stay in
// the lexicon for cross-word checks but are never placed as main words.
func FromLexicon(lex *lexicon.Lexicon) *Trie {
	t := New()
	for _, word := range lex.Words() {
		if eligible(word) {
			t.Insert(word)
		}
	}
	log.Debug().Str("lexicon", lex.Name()).Int("words", t.numWords).
		Msg("built word trie")
	return t
}

func eligible(word string) bool {
	if len(word) < 3 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !alphabet.IsUpper(word[i]) {
			return false
		}
	}
	return true
}

// Insert adds one uppercase word, extending the node path as needed and
// marking the final node terminal.
func (t *Trie) Insert(word string) {
	node := t.root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		child := node.Child(letter)
		if child == nil {
			child = newNode(letter)
			node.children = append(node.children, child)
			node.letterIndexes[letter-'A'] = int8(len(node.children) - 1)
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.numWords++
	}
}

// Root returns the root node, the starting point of every search.
func (t *Trie) Root() *Node {
	return t.root
}

// NumWords returns the number of words inserted.
func (t *Trie) NumWords() int {
	return t.numWords
}

// HasWord walks the trie for the word and checks the final node is
// terminal.
func (t *Trie) HasWord(word string) bool {
	node := t.root
	for i := 0; i < len(word); i++ {
		if !alphabet.IsUpper(word[i]) {
			return false
		}
		node = node.Child(word[i])
		if node == nil {
			return false
		}
	}
	return node.terminal
}
