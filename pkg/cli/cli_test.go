package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), append(args, "--log-level", "error"), &out)
	return out.String(), err
}

const dict = "cat\ncar\ndog\n\nl'eau\nex-wife\ncat\nC4t\n"

func TestWordsCommand(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "words", "ca", "--dict", path)
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\n", out)

	out, err = run(t, "words", "--dict", path)
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\ndog\nex-wife\nl'eau\n", out)
}

func TestWordsCommandOutputs(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "words", "ca", "--dict", path, "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, "[\"car\",\"cat\"]\n", out)

	out, err = run(t, "words", "zz", "--dict", path, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	out, err = run(t, "words", "l", "--dict", path, "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "word,length\nl'eau,5\n", out)

	out, err = run(t, "words", "ca", "--dict", path, "-o", "tsv")
	require.NoError(t, err)
	assert.Equal(t, "word\tlength\ncar\t3\ncat\t3\n", out)

	out, err = run(t, "words", "ca", "--dict", path, "--format", "TEXT", "-o", "JSON")
	require.NoError(t, err)
	assert.Equal(t, "[\"car\",\"cat\"]\n", out)

	_, err = run(t, "words", "--dict", path, "-o", "yaml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestContainsCommand(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "contains", "cat", "ca", "c4t", "l'eau", "--dict", path)
	require.NoError(t, err)
	assert.Equal(t, "cat true\nca false\nc4t false\nl'eau true\n", out)
}

func TestContainsCommandNormalized(t *testing.T) {
	path := writeDict(t, "Élève\nCafé\n")

	out, err := run(t, "contains", "ELEVE", "café", "--dict", path, "--lowercase", "--fold-accents")
	require.NoError(t, err)
	assert.Equal(t, "ELEVE true\ncafé true\n", out)
}

func TestLengthCommand(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "length", "3", "--dict", path)
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\ndog\n", out)

	out, err = run(t, "length", "0", "--dict", path)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestStatsCommand(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "stats", "--dict", path)
	require.NoError(t, err)
	assert.Contains(t, out, "words:        5\n")
	assert.Contains(t, out, "duplicates:   1\n")
	assert.Contains(t, out, "rejected:     1\n")
	assert.Contains(t, out, "longest word: 7\n")
}

func TestBenchCommand(t *testing.T) {
	path := writeDict(t, dict)

	out, err := run(t, "bench", "--dict", path, "--repeat", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "number of words:       5\n")
	assert.Contains(t, out, "search time (lengths)")

	_, err = run(t, "bench", "--dict", path, "--repeat", "0")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "15")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\nm\nba\nbb\n", out)

	out, err = run(t, "generate", "100", "--probe", "--every", "10")
	require.NoError(t, err)
	assert.Equal(t, "words: 100\n", out)

	_, err = run(t, "generate", "5", "--radix", "29")
	assert.ErrorContains(t, err, "radix")
}

func TestNumberToWord(t *testing.T) {
	assert.Equal(t, "a", NumberToWord(0, 13))
	assert.Equal(t, "m", NumberToWord(12, 13))
	assert.Equal(t, "ba", NumberToWord(13, 13))
	assert.Equal(t, "'", NumberToWord(27, 28))
	assert.Equal(t, "ba", NumberToWord(2, 2))
	assert.Panics(t, func() { NumberToWord(1, 1) })
}

func TestMissingDictionary(t *testing.T) {
	_, err := run(t, "words")
	assert.ErrorContains(t, err, "dictionary path is required")

	_, err = run(t, "words", "--dict", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := writeDict(t, dict)
	configPath := filepath.Join(t.TempDir(), "lextree.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dictionary:\n  path: "+path+"\noutput:\n  format: json\nlog:\n  pretty: true\n"), 0644))

	out, err := run(t, "words", "do", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "[\"dog\"]\n", out)

	out, err = run(t, "words", "do", "--config", configPath, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "dog\n", out, "Flags override the config file")

	out, err = run(t, "words", "do", "--config", configPath, "--log-pretty=false")
	require.NoError(t, err)
	assert.Equal(t, "[\"dog\"]\n", out)

	globals := func(args ...string) *Globals {
		var cli CLI
		_, err := kong.Must(&cli).Parse(args)
		require.NoError(t, err)
		return &cli.Globals
	}

	cfg, err := globals("stats", "--config", configPath).config()
	require.NoError(t, err)
	assert.True(t, cfg.Log.Pretty)

	cfg, err = globals("stats", "--config", configPath, "--log-pretty=false").config()
	require.NoError(t, err)
	assert.False(t, cfg.Log.Pretty, "Flags override the config file")

	cfg, err = globals("stats", "--log-pretty=true").config()
	require.NoError(t, err)
	assert.True(t, cfg.Log.Pretty)
}

func TestNewWriter(t *testing.T) {
	for _, format := range []string{"", "text", "json", "csv", "tsv"} {
		_, err := NewWriter(format)
		assert.NoError(t, err, format)
	}
	_, err := NewWriter("TSV")
	assert.NoError(t, err)
	_, err = NewWriter("xml")
	assert.Error(t, err)

	var out strings.Builder
	require.NoError(t, JsonWriter{}.Write(&out, []string{"l'eau", "a\"b"}))
	assert.Equal(t, "[\"l'eau\",\"a\\\"b\"]\n", out.String())
}
