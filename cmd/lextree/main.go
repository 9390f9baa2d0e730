package main

import (
	"context"
	"fmt"
	"os"

	"github.com/khalid-nowaf/lextree/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
