package wordlist

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents removes diacritics: the word is decomposed, its combining marks dropped, and recomposed.
// Characters without an ASCII base (e.g. 'ß', 'æ') are left untouched.
func FoldAccents(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return folded
}
