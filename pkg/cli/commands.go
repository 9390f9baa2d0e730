package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/khalid-nowaf/lextree/pkg/server"
)

type ContainsCmd struct {
	Words []string `arg:"" help:"Words to look up"`
}

// Run prints one "word true|false" line per word.
func (cmd *ContainsCmd) Run(ctx *Context) error {
	tree, _, err := ctx.loadTree(ctx.Logger)
	if err != nil {
		return err
	}
	for _, word := range cmd.Words {
		ctx.printf("%s %t\n", word, tree.ContainsWord(word))
	}
	return nil
}

type WordsCmd struct {
	Prefix string `arg:"" optional:"" help:"Prefix of the words, empty for every word"`
}

func (cmd *WordsCmd) Run(ctx *Context) error {
	tree, _, err := ctx.loadTree(ctx.Logger)
	if err != nil {
		return err
	}
	return ctx.writeWords(tree.GetWords(cmd.Prefix))
}

type LengthCmd struct {
	Length int `arg:"" help:"Length of the words"`
}

func (cmd *LengthCmd) Run(ctx *Context) error {
	tree, _, err := ctx.loadTree(ctx.Logger)
	if err != nil {
		return err
	}
	return ctx.writeWords(tree.GetWordsOfLength(cmd.Length))
}

type StatsCmd struct{}

func (cmd *StatsCmd) Run(ctx *Context) error {
	tree, report, err := ctx.loadTree(ctx.Logger)
	if err != nil {
		return err
	}
	stats := tree.Stats()

	ctx.printf("words:        %d\n", tree.Size())
	ctx.printf("lines read:   %d\n", report.Read)
	ctx.printf("duplicates:   %d\n", report.Duplicates)
	ctx.printf("rejected:     %d\n", report.Rejected)
	ctx.printf("nodes:        %d\n", stats.Nodes)
	ctx.printf("leaves:       %d\n", stats.Leaves)
	ctx.printf("branches:     %d\n", stats.BranchNodes)
	ctx.printf("longest word: %d\n", stats.LongestWord)
	return nil
}

type ServeCmd struct {
	Addr string `help:"Listen address, overrides server.addr of the config"`
}

// Run loads the dictionary then serves it until SIGINT or SIGTERM.
func (cmd *ServeCmd) Run(ctx *Context) error {
	tree, _, err := ctx.loadTree(ctx.Logger)
	if err != nil {
		return err
	}

	addr := ctx.Config.Server.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}
	if addr == "" {
		return fmt.Errorf("a listen address is required")
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.NewServer(addr, tree, ctx.Logger).Start(sigCtx)
}
