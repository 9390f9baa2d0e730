package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/text/encoding/charmap"
)

// Supported charsets of a text word list.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "iso-8859-1"
)

// Options tune how raw lines become words.
type Options struct {
	Encoding    string // EncodingUTF8 (default) or EncodingLatin1
	Lowercase   bool   // lowercase every word
	FoldAccents bool   // strip diacritics, "élève" becomes "eleve"
}

// normalize applies the options to a trimmed line.
// A line made only of marks folds to the empty string and is then skipped.
func (o Options) normalize(word string) string {
	if o.Lowercase {
		word = strings.ToLower(word)
	}
	if o.FoldAccents {
		word = FoldAccents(word)
	}
	return word
}

// ParseText reads a newline delimited word list and calls onEachWord once per line that is not
// empty after normalization.
// line is the 1 based line number in the input. An error returned by onEachWord stops the parsing
// and is returned as is.
func ParseText(r io.Reader, opts Options, onEachWord func(line int, word string) error) error {
	reader, err := decode(r, opts.Encoding)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(reader)
	// dictionaries are one short word per line, but do not choke on a long one
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		word := opts.normalize(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if err := onEachWord(line, word); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list at line %d: %w", line+1, err)
	}
	return nil
}

// ParseFile is ParseText over a file.
func ParseFile(path string, opts Options, onEachWord func(line int, word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ParseText(file, opts, onEachWord)
}

// ParseBolt reads the words stored as keys of a bbolt bucket, in key order.
// The database is opened read only. line is the 1 based index of the key in the bucket.
func ParseBolt(path string, bucket string, opts Options, onEachWord func(line int, word string) error) error {
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("opening word database %s: %w", path, err)
	}
	defer db.Close()

	return db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found in %s", bucket, path)
		}

		line := 0
		return b.ForEach(func(k, _ []byte) error {
			line++
			word := opts.normalize(strings.TrimSpace(string(k)))
			if word == "" {
				return nil
			}
			return onEachWord(line, word)
		})
	})
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}
