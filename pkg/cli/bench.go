package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lextree/pkg/lexicon"
	"github.com/khalid-nowaf/lextree/pkg/trie"
)

type BenchCmd struct {
	Repeat    int `help:"How many times every step is repeated" default:"20"`
	MaxLength int `help:"Longest length checked by the length step, 0 for the longest word"`
}

// Run loads the dictionary Repeat times, looks up every word of the word list, looks up every
// word with an "xx" suffix (which must all miss), and checks that the words of every length add
// up to the size of the tree.
func (cmd *BenchCmd) Run(ctx *Context) error {
	if cmd.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", cmd.Repeat)
	}

	// load
	start := time.Now()
	var tree *lexicon.LexicographicTree
	for i := 0; i < cmd.Repeat; i++ {
		logger := ctx.Logger
		if i > 0 {
			// rejected words were already reported by the first load
			logger = zerolog.Nop()
		}
		var err error
		if tree, _, err = ctx.loadTree(logger); err != nil {
			return err
		}
	}
	ctx.printf("load time:             %s\n", time.Since(start))
	ctx.printf("number of words:       %d\n", tree.Size())

	words, err := ctx.sourceWords()
	if err != nil {
		return err
	}

	// existing words
	start = time.Now()
	missing := 0
	for i := 0; i < cmd.Repeat; i++ {
		for _, word := range words {
			if !tree.ContainsWord(word) {
				missing++
				if i == 0 {
					ctx.Logger.Warn().Str("word", word).Msg("word of the list not found")
				}
			}
		}
	}
	ctx.printf("search time (existing): %s\n", time.Since(start))

	// non existing words
	start = time.Now()
	unexpected := 0
	for i := 0; i < cmd.Repeat; i++ {
		for _, word := range words {
			if tree.ContainsWord(word + "xx") {
				unexpected++
				if i == 0 {
					ctx.Logger.Warn().Str("word", word+"xx").Msg("unexpected word found")
				}
			}
		}
	}
	ctx.printf("search time (missing):  %s\n", time.Since(start))

	// words of increasing length
	maxLength := cmd.MaxLength
	if maxLength <= 0 {
		maxLength = tree.Stats().LongestWord
	}
	start = time.Now()
	mismatch := false
	for i := 0; i < cmd.Repeat; i++ {
		total := 0
		for n := 0; n <= maxLength; n++ {
			total += len(tree.GetWordsOfLength(n))
		}
		if total != tree.Size() {
			mismatch = true
			ctx.Logger.Warn().Int("size", tree.Size()).Int("total", total).Msg("words of every length do not add up to the size")
		}
	}
	ctx.printf("search time (lengths):  %s\n", time.Since(start))

	if mismatch {
		return fmt.Errorf("length totals do not match the dictionary size %d", tree.Size())
	}
	ctx.Logger.Info().Int("missing", missing/cmd.Repeat).Int("unexpected", unexpected/cmd.Repeat).Msg("benchmark done")
	return nil
}

// sourceWords reads the raw words of the configured word list.
func (ctx *Context) sourceWords() ([]string, error) {
	source, err := ctx.Config.Dictionary.Source()
	if err != nil {
		return nil, err
	}
	words := []string{}
	err = source.Each(func(_ int, word string) error {
		words = append(words, word)
		return nil
	})
	return words, err
}

type GenerateCmd struct {
	Count int64 `arg:"" help:"Number of words to generate"`
	Radix int   `help:"Number of distinct letters used, from 2 to 28" default:"13"`
	Probe bool  `help:"Insert the words into a tree and report its memory instead of printing them"`
	Every int64 `help:"Report interval of the memory probe, in words" default:"1048576"`
}

// NumberToWord spells number in base radix with the first radix letters of the alphabet.
// Counting from 0 enumerates all the words breadth first: a, b, ..., ba, bb, ...
func NumberToWord(number int64, radix int) string {
	if radix < 2 || radix > trie.AlphabetSize {
		panic(fmt.Sprintf("[BUG] NumberToWord: radix %d out of range", radix))
	}
	slots := []int{}
	for {
		slots = append([]int{int(number % int64(radix))}, slots...)
		number /= int64(radix)
		if number == 0 {
			break
		}
	}
	return lexicon.SlotsToWord(slots)
}

func (cmd *GenerateCmd) Run(ctx *Context) error {
	if cmd.Radix < 2 || cmd.Radix > trie.AlphabetSize {
		return fmt.Errorf("radix must be between 2 and %d, got %d", trie.AlphabetSize, cmd.Radix)
	}
	if cmd.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", cmd.Count)
	}

	if !cmd.Probe {
		words := make([]string, 0, cmd.Count)
		for i := int64(0); i < cmd.Count; i++ {
			words = append(words, NumberToWord(i, cmd.Radix))
		}
		return ctx.writeWords(words)
	}

	if cmd.Every < 1 {
		return fmt.Errorf("every must be at least 1, got %d", cmd.Every)
	}

	tree := lexicon.NewLexicographicTree()
	var mem runtime.MemStats
	for i := int64(0); i < cmd.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := tree.InsertWord(NumberToWord(i, cmd.Radix)); err != nil {
			return err
		}
		if (i+1)%cmd.Every == 0 {
			runtime.ReadMemStats(&mem)
			ctx.Logger.Info().
				Int64("words", i+1).
				Uint64("heap_mb", mem.HeapAlloc/(1<<20)).
				Uint64("sys_mb", mem.Sys/(1<<20)).
				Msg("memory probe")
		}
	}
	ctx.printf("words: %d\n", tree.Size())
	return nil
}
