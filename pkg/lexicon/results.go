package lexicon

import (
	"fmt"

	"github.com/khalid-nowaf/lextree/pkg/trie"
)

// Outcome tells what an insertion did to the tree.
type Outcome interface {
	String() string
}

type (
	Inserted       struct{} // the word was new, the size grew by one
	AlreadyPresent struct{} // the word was there already, nothing changed
)

func (Inserted) String() string {
	return "Inserted"
}

func (AlreadyPresent) String() string {
	return "Already Present"
}

// records the outcome of inserting a word for reporting
type InsertionResult struct {
	Word    string // word as inserted, after normalization
	Outcome        // what happened
}

// IsNew reports whether the insertion added a word.
func (ir *InsertionResult) IsNew() bool {
	_, ok := ir.Outcome.(Inserted)
	return ok
}

func (ir *InsertionResult) String() string {
	return fmt.Sprintf("%s: %q", ir.Outcome, ir.Word)
}

// InvalidCharacterError is returned when a word holds a character outside of the alphabet.
// The tree is left untouched.
type InvalidCharacterError struct {
	Word     string
	Char     rune
	Position int // rune index of Char in Word
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d of %q", trie.ErrInvalidCharacter, e.Char, e.Position, e.Word)
}

// Unwrap makes errors.Is(err, trie.ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Unwrap() error {
	return trie.ErrInvalidCharacter
}
