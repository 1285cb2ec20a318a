package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
}

var cli struct {
	Config  string `short:"c" help:"Configuration file path" default:"ppg.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose output"`

	Tokens TokensCmd `cmd:"" help:"Dump the token stream of a grammar file"`
	Parse  ParseCmd  `cmd:"" help:"Parse a grammar file and print its outline"`
	Check  CheckCmd  `cmd:"" help:"Parse every grammar file in the project"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ppg"),
		kong.Description("Front end for the ppg grammar-description language"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&Context{Config: cli.Config, Verbose: cli.Verbose}); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
