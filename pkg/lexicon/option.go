package lexicon

type Option func(*LexicographicTree) *LexicographicTree

// Normalizer rewrites a word before it reaches the tree, e.g. strings.ToLower.
type Normalizer func(word string) string

func defaultOptions() *LexicographicTree {
	return &LexicographicTree{
		normalize: func(word string) string { return word },
	}
}

// WithNormalizer applies normalizers, in order, to every inserted and queried word.
func WithNormalizer(normalizers ...Normalizer) Option {
	return func(t *LexicographicTree) *LexicographicTree {
		previous := t.normalize
		t.normalize = func(word string) string {
			word = previous(word)
			for _, normalize := range normalizers {
				word = normalize(word)
			}
			return word
		}
		return t
	}
}
