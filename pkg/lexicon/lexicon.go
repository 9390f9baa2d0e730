package lexicon

import (
	"errors"

	"github.com/khalid-nowaf/lextree/pkg/trie"
)

// LexicographicTree is a dictionary of words stored in a trie.
//
// Words are made of the lowercase letters, the hyphen and the apostrophe.
// Every enumeration returns words in alphabet order where '-' and '\'' sort after 'z'.
//
// The tree has a single writer discipline: InsertWord and InsertWords must not run
// concurrently with each other or with any read. Once loading is done, ContainsWord,
// GetWords, GetWordsOfLength, Size and Stats can be called from any number of goroutines.
// Mixing inserts with concurrent reads is undefined behavior.
type LexicographicTree struct {
	root      *trie.Node
	size      int // number of end word nodes
	normalize Normalizer
}

// NewLexicographicTree creates an empty tree.
func NewLexicographicTree(opts ...Option) *LexicographicTree {
	t := defaultOptions()
	t.root = trie.NewRoot()
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

// Size returns the number of distinct words in the tree.
func (t *LexicographicTree) Size() int {
	return t.size
}

// InsertWord adds a word to the tree if it is not already present.
//
// Returns:
//   - an InsertionResult with an Inserted or AlreadyPresent outcome
//   - an *InvalidCharacterError if the word holds a character outside of the alphabet,
//     in which case the tree is not modified at all
//
// The empty word is accepted, it ends at the root.
func (t *LexicographicTree) InsertWord(word string) (*InsertionResult, error) {
	word = t.normalize(word)

	// validate the whole word first, a rejected word must not leave a partial path behind
	path, err := WordToSlots(word)
	if err != nil {
		return nil, err
	}

	node := t.root
	for _, slot := range path {
		node = node.AttachChildAt(slot)
	}

	result := &InsertionResult{Word: word, Outcome: AlreadyPresent{}}
	if node.MarkEndWord() {
		t.size++
		result.Outcome = Inserted{}
	}
	return result, nil
}

// InsertWords inserts every word, skipping the invalid ones.
// The results of the accepted words are returned in input order, together with
// all insertion errors joined.
func (t *LexicographicTree) InsertWords(words ...string) ([]*InsertionResult, error) {
	results := make([]*InsertionResult, 0, len(words))
	var errs []error
	for _, word := range words {
		result, err := t.InsertWord(word)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, result)
	}
	return results, errors.Join(errs...)
}

// ContainsWord reports whether word was inserted.
// A word with characters outside of the alphabet is simply not found.
func (t *LexicographicTree) ContainsWord(word string) bool {
	node := t.lookup(t.normalize(word))
	return node != nil && node.IsEndWord()
}

// GetWords returns, in alphabet order, every word starting with prefix.
// An empty prefix returns all words, an unknown prefix returns an empty slice.
func (t *LexicographicTree) GetWords(prefix string) []string {
	prefix = t.normalize(prefix)
	words := []string{}

	node := t.lookup(prefix)
	if node == nil {
		return words
	}

	node.ForEachStepDown([]rune(prefix), func(word []rune, n *trie.Node) {
		if n.IsEndWord() {
			words = append(words, string(word))
		}
	}, nil)

	return words
}

// GetWordsOfLength returns, in alphabet order, every word of exactly length characters.
// A length lower than or equal to zero returns an empty slice.
func (t *LexicographicTree) GetWordsOfLength(length int) []string {
	words := []string{}
	if length <= 0 {
		return words
	}

	t.root.ForEachStepDown(nil, func(word []rune, n *trie.Node) {
		if len(word) == length && n.IsEndWord() {
			words = append(words, string(word))
		}
	}, func(word []rune, _ *trie.Node) bool {
		// no word below this depth can have the requested length
		return len(word) < length
	})

	return words
}

// Stats describes the shape of the tree.
type Stats struct {
	Words       int // end word nodes found by walking the tree, always equal to Size
	Nodes       int // all nodes, the root included
	Leaves      int // nodes without children
	BranchNodes int // nodes with two children or more
	LongestWord int // length of the longest word
}

// Stats walks the whole tree and counts its nodes.
func (t *LexicographicTree) Stats() Stats {
	stats := Stats{}
	t.root.ForEachStepDown(nil, func(word []rune, n *trie.Node) {
		stats.Nodes++
		if n.IsEndWord() {
			stats.Words++
			if len(word) > stats.LongestWord {
				stats.LongestWord = len(word)
			}
		}
		children := 0
		n.ForEachChild(func(*trie.Node) { children++ })
		switch {
		case children == 0:
			stats.Leaves++
		case children > 1:
			stats.BranchNodes++
		}
	}, nil)
	return stats
}

// lookup follows word from the root, it returns nil as soon as the path breaks.
func (t *LexicographicTree) lookup(word string) *trie.Node {
	node := t.root
	for _, c := range word {
		node = node.Child(c)
		if node == nil {
			return nil
		}
	}
	return node
}
