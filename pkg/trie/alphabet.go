package trie

import (
	"errors"
	"fmt"
)

// Number of child slots of a node: the 26 lowercase letters, the hyphen and the apostrophe.
const AlphabetSize = 28

// Slots of the two non letter characters, they sort after 'z'.
const (
	HyphenSlot     = 26
	ApostropheSlot = 27
)

// ErrInvalidCharacter is returned for any rune outside of the alphabet.
var ErrInvalidCharacter = errors.New("invalid character")

// Slot maps an accepted character to its index in a node's children array.
// The index also defines the enumeration order of every traversal:
//
//	'a'..'z' -> 0..25, '-' -> 26, '\'' -> 27
func Slot(c rune) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	case c == '-':
		return HyphenSlot, nil
	case c == '\'':
		return ApostropheSlot, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
}

// IsValid reports whether c belongs to the alphabet.
func IsValid(c rune) bool {
	_, err := Slot(c)
	return err == nil
}

// Letter is the inverse of Slot.
func Letter(slot int) rune {
	switch {
	case slot >= 0 && slot < 26:
		return rune('a' + slot)
	case slot == HyphenSlot:
		return '-'
	case slot == ApostropheSlot:
		return '\''
	}
	panic(fmt.Sprintf("[BUG] Letter: slot %d out of range", slot))
}
