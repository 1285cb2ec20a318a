package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFindGrammarFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.ppg", "a.ppg", "note.txt", filepath.Join("sub", "c.ppg")} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("A := x;\n"), 0o644))
	}

	files, err := findGrammarFiles(dir, []string{".ppg"})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.ppg"),
		filepath.Join(dir, "b.ppg"),
		filepath.Join(dir, "sub", "c.ppg"),
	}, files)
}

func TestFindGrammarFilesMissingDir(t *testing.T) {
	_, err := findGrammarFiles(filepath.Join(t.TempDir(), "nope"), []string{".ppg"})
	assert.Error(t, err)
}
