package lexicon

import (
	"strings"

	"github.com/khalid-nowaf/lextree/pkg/trie"
)

// WordToSlots converts a word into the path of child slots that spells it.
// All characters are checked before anything is returned, so a caller can
// validate a word completely before touching the tree.
//
// Returns:
//   - the slots, one per rune of word
//   - an *InvalidCharacterError for the first rune outside of the alphabet
//
// Example:
//
//	WordToSlots("a-'") // []int{0, 26, 27}, nil
func WordToSlots(word string) ([]int, error) {
	path := make([]int, 0, len(word))
	position := 0
	for _, c := range word {
		slot, err := trie.Slot(c)
		if err != nil {
			return nil, &InvalidCharacterError{Word: word, Char: c, Position: position}
		}
		path = append(path, slot)
		position++
	}
	return path, nil
}

// SlotsToWord is the inverse of WordToSlots.
// panics if a slot is out of range
func SlotsToWord(slots []int) string {
	var b strings.Builder
	b.Grow(len(slots))
	for _, slot := range slots {
		b.WriteRune(trie.Letter(slot))
	}
	return b.String()
}
