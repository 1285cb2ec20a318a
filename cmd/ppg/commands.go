package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/fatih/color"

	"github.com/shibukawa/ppg"
	"github.com/shibukawa/ppg/parser"
)

// Sentinel errors
var (
	ErrCheckFailed = errors.New("check failed")
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	File string `arg:"" help:"Grammar file" type:"existingfile"`
}

// Run dumps the grammar-level token stream of one file, one token per line.
func (c *TokensCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	p := parser.NewParser(string(src))
	for {
		token, err := p.Scan()
		if err != nil {
			return err
		}
		if token.Kind == parser.EOF {
			return nil
		}
		fmt.Printf("%-20s %-10s %q\n", token.Pos, token.Kind, token.Value)
	}
}

// ParseCmd represents the parse command
type ParseCmd struct {
	File string `arg:"" help:"Grammar file" type:"existingfile"`
}

// Run parses one file and prints its definition outline.
func (c *ParseCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	file, err := parser.Parse(string(src))
	if err != nil {
		return err
	}

	color.Green("OK: %s (%d definitions)", c.File, len(file.Definitions.Elements))
	for _, def := range file.Definitions.Elements {
		fmt.Printf("  %-20s %d nodes at %s\n", def.Name.Token.Value, len(def.Rule.Elements), def.Pos.Begin)
	}
	return nil
}

// CheckCmd represents the check command
type CheckCmd struct {
	Dir string `arg:"" optional:"" help:"Directory to check (defaults to the configured input dir)"`
}

// Run parses every grammar file under the directory and reports failures.
func (c *CheckCmd) Run(ctx *Context) error {
	config, err := ppg.LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	dir := c.Dir
	if dir == "" {
		dir = config.InputDir
	}

	files, err := findGrammarFiles(dir, config.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("no grammar files found under %s", dir)
		return nil
	}

	failed := 0
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if _, err := parser.Parse(string(src)); err != nil {
			failed++
			color.Red("NG: %s", path)
			fmt.Printf("    %s\n", err)
			continue
		}
		if ctx.Verbose {
			color.Green("OK: %s", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(files))
	}
	color.Green("OK: %d files", len(files))
	return nil
}

// findGrammarFiles collects files under dir whose extension is configured,
// sorted by path.
func findGrammarFiles(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(extensions, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
