package wordlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lextree/pkg/lexicon"
	"github.com/khalid-nowaf/lextree/pkg/trie"
)

// Supported word list formats.
const (
	FormatText = "text"
	FormatBolt = "bolt"
)

// Source produces the words of a word list.
type Source interface {
	Each(onEachWord func(line int, word string) error) error
	String() string
}

// TextFile is a newline delimited word list on disk.
type TextFile struct {
	Path    string
	Options Options
}

func (s TextFile) Each(onEachWord func(line int, word string) error) error {
	return ParseFile(s.Path, s.Options, onEachWord)
}

func (s TextFile) String() string {
	return s.Path
}

// BoltBucket is a bbolt database holding one word per key of Bucket.
type BoltBucket struct {
	Path    string
	Bucket  string
	Options Options
}

func (s BoltBucket) Each(onEachWord func(line int, word string) error) error {
	return ParseBolt(s.Path, s.Bucket, s.Options, onEachWord)
}

func (s BoltBucket) String() string {
	return s.Path + "#" + s.Bucket
}

// Open returns the source for a word list of the given format.
func Open(format, path, bucket string, opts Options) (Source, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return TextFile{Path: path, Options: opts}, nil
	case FormatBolt:
		if bucket == "" {
			return nil, errors.New("a bucket is required to read a bolt word list")
		}
		return BoltBucket{Path: path, Bucket: bucket, Options: opts}, nil
	}
	return nil, fmt.Errorf("unsupported word list format %q", format)
}

// Inserter is the part of the tree the loader needs.
type Inserter interface {
	InsertWord(word string) (*lexicon.InsertionResult, error)
}

// Report counts what happened to the words of a source.
type Report struct {
	Read       int // non empty lines
	Inserted   int // new words
	Duplicates int // words already in the tree
	Rejected   int // words with characters outside of the alphabet
}

func (r Report) String() string {
	return fmt.Sprintf("read %d, inserted %d, duplicates %d, rejected %d", r.Read, r.Inserted, r.Duplicates, r.Rejected)
}

// Loader feeds the words of a source into a tree.
type Loader struct {
	Tree   Inserter
	Logger zerolog.Logger
}

// NewLoader creates a loader that logs with logger.
func NewLoader(tree Inserter, logger zerolog.Logger) *Loader {
	return &Loader{Tree: tree, Logger: logger}
}

// Load inserts every word of source.
// Words with characters outside of the alphabet are logged, counted and skipped.
// Reading errors and context cancellation stop the load, the words inserted so far stay in the tree.
func (l *Loader) Load(ctx context.Context, source Source) (*Report, error) {
	report := &Report{}
	log := l.Logger.With().Str("source", source.String()).Logger()

	err := source.Each(func(line int, word string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Read++

		result, err := l.Tree.InsertWord(word)
		if errors.Is(err, trie.ErrInvalidCharacter) {
			report.Rejected++
			log.Warn().Int("line", line).Str("word", word).Err(err).Msg("word rejected")
			return nil
		}
		if err != nil {
			return err
		}

		if result.IsNew() {
			report.Inserted++
		} else {
			report.Duplicates++
			log.Debug().Int("line", line).Str("word", word).Msg("duplicate word")
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("loading %s: %w", source, err)
	}

	log.Info().
		Int("read", report.Read).
		Int("inserted", report.Inserted).
		Int("duplicates", report.Duplicates).
		Int("rejected", report.Rejected).
		Msg("word list loaded")
	return report, nil
}
