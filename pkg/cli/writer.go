package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Writer renders a list of words.
type Writer interface {
	Write(out io.Writer, words []string) error
}

// NewWriter returns the writer of an output format: text, json, csv or tsv.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// TextWriter writes one word per line.
type TextWriter struct{}

func (TextWriter) Write(out io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter writes a JSON array of words, one element at a time.
type JsonWriter struct{}

func (JsonWriter) Write(out io.Writer, words []string) error {
	if _, err := io.WriteString(out, "["); err != nil {
		return err
	}
	for i, word := range words {
		if i > 0 {
			if _, err := io.WriteString(out, ","); err != nil {
				return err
			}
		}
		encoded, err := json.Marshal(word)
		if err != nil {
			return err
		}
		if _, err = out.Write(encoded); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "]\n")
	return err
}

// CsvWriter writes a word,length table with a header.
type CsvWriter struct {
	isTSV bool
}

func (w CsvWriter) Write(out io.Writer, words []string) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{"word", "length"}); err != nil {
		return err
	}
	for _, word := range words {
		if err := writer.Write([]string{word, strconv.Itoa(utf8.RuneCountInString(word))}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
