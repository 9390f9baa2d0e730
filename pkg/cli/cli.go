package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lextree/pkg/config"
	"github.com/khalid-nowaf/lextree/pkg/lexicon"
	"github.com/khalid-nowaf/lextree/pkg/wordlist"
)

// Globals are the flags shared by every command, they override the config file.
type Globals struct {
	Config      string `help:"YAML config file" type:"path"`
	Dict        string `help:"Word list to load" short:"d"`
	Format      string `help:"Word list format: text or bolt"`
	Bucket      string `help:"Bucket holding the words of a bolt word list"`
	Encoding    string `help:"Charset of a text word list: utf-8 or iso-8859-1"`
	Lowercase   bool   `help:"Lowercase the words of the word list and of the queries"`
	FoldAccents bool   `help:"Strip accents from the words of the word list and of the queries"`
	Output      string `help:"Output format: text, json, csv or tsv" short:"o"`
	LogLevel    string `help:"Log level: debug, info, warn or error"`
	LogPretty   *bool  `help:"Human readable logs instead of JSON, --log-pretty=false to turn them off"`
}

// CLI is the command tree of lextree.
type CLI struct {
	Globals

	Contains ContainsCmd `cmd:"" help:"Check if words are in the dictionary"`
	Words    WordsCmd    `cmd:"" help:"List the words starting with a prefix, all words without one"`
	Length   LengthCmd   `cmd:"" help:"List the words of a given length"`
	Stats    StatsCmd    `cmd:"" help:"Show the size and the shape of the dictionary tree"`
	Bench    BenchCmd    `cmd:"" help:"Measure load and lookup times of the dictionary"`
	Generate GenerateCmd `cmd:"" help:"Generate synthetic words, or probe the memory used by a growing tree"`
	Serve    ServeCmd    `cmd:"" help:"Serve the dictionary over HTTP"`
}

// Context is handed to every command.
type Context struct {
	context.Context
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
}

// Run parses args and runs the selected command, printing results to out.
func Run(ctx context.Context, args []string, out io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("lextree"),
		kong.Description("A dictionary of words in a lexicographic tree."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.Globals.config()
	if err != nil {
		return err
	}

	return kctx.Run(&Context{
		Context: ctx,
		Config:  cfg,
		Logger:  newLogger(cfg.Log, os.Stderr),
		Out:     out,
	})
}

// config loads the config file and applies the flags on top of it.
func (g *Globals) config() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}

	override := func(dst *string, flag string) {
		if flag != "" {
			*dst = flag
		}
	}
	override(&cfg.Dictionary.Path, g.Dict)
	override(&cfg.Dictionary.Format, g.Format)
	override(&cfg.Dictionary.Bucket, g.Bucket)
	override(&cfg.Dictionary.Encoding, g.Encoding)
	override(&cfg.Output.Format, g.Output)
	override(&cfg.Log.Level, g.LogLevel)
	cfg.Dictionary.Lowercase = cfg.Dictionary.Lowercase || g.Lowercase
	cfg.Dictionary.FoldAccents = cfg.Dictionary.FoldAccents || g.FoldAccents
	if g.LogPretty != nil {
		cfg.Log.Pretty = *g.LogPretty
	}

	return cfg, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// normalizers are the query side of the word list options, so queries match what was loaded.
func (ctx *Context) normalizers() []lexicon.Option {
	var normalizers []lexicon.Normalizer
	if ctx.Config.Dictionary.Lowercase {
		normalizers = append(normalizers, strings.ToLower)
	}
	if ctx.Config.Dictionary.FoldAccents {
		normalizers = append(normalizers, wordlist.FoldAccents)
	}
	if len(normalizers) == 0 {
		return nil
	}
	return []lexicon.Option{lexicon.WithNormalizer(normalizers...)}
}

// loadTree validates the configuration and loads the configured word list into a new tree.
func (ctx *Context) loadTree(logger zerolog.Logger) (*lexicon.LexicographicTree, *wordlist.Report, error) {
	if err := ctx.Config.Validate(); err != nil {
		return nil, nil, err
	}
	source, err := ctx.Config.Dictionary.Source()
	if err != nil {
		return nil, nil, err
	}

	tree := lexicon.NewLexicographicTree(ctx.normalizers()...)
	report, err := wordlist.NewLoader(tree, logger).Load(ctx, source)
	if err != nil {
		return nil, report, err
	}
	return tree, report, nil
}

func (ctx *Context) writeWords(words []string) error {
	writer, err := NewWriter(ctx.Config.Output.Format)
	if err != nil {
		return err
	}
	return writer.Write(ctx.Out, words)
}

func (ctx *Context) printf(format string, args ...any) {
	fmt.Fprintf(ctx.Out, format, args...)
}
