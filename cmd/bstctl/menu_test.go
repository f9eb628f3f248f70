package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e11jah/bst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds the menu one input line per element of lines.
func runScript(t *testing.T, lines ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, runMenu(in, &out, &errOut))
	return out.String(), errOut.String()
}

func insertLines(keys ...string) []string {
	var lines []string
	for _, k := range keys {
		lines = append(lines, "1", k)
	}
	return lines
}

func TestMenuInsertAndTraverse(t *testing.T) {
	lines := insertLines("50", "30", "70", "20", "40", "60", "80")
	lines = append(lines, "6", "7", "8", "4", "40", "4", "999", "0")
	out, errOut := runScript(t, lines...)

	assert.Empty(t, errOut)
	assert.Contains(t, out, "Inserted 50\n")
	assert.Contains(t, out, "Preorder: 50 30 20 40 70 60 80 \n")
	assert.Contains(t, out, "Inorder: 20 30 40 50 60 70 80 \n")
	assert.Contains(t, out, "Postorder: 20 40 30 60 80 70 50 \n")
	assert.Contains(t, out, "Path to 40: 50 -> 30 -> 40\n")
	assert.Contains(t, out, "Key 999 was not found.\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestMenuRemoveAndClear(t *testing.T) {
	lines := insertLines("50", "30", "70", "20", "40", "60", "80")
	lines = append(lines, "2", "30", "7", "3", "7", "0")
	out, _ := runScript(t, lines...)

	assert.Contains(t, out, "Removed 30\n")
	assert.Contains(t, out, "Inorder: 20 40 50 60 70 80 \n")
	assert.Contains(t, out, "The tree has been cleared.\n")
	assert.Contains(t, out, "Inorder: [tree is empty]\n")
}

func TestMenuRetriesInvalidInput(t *testing.T) {
	out, _ := runScript(t, "abc", "", "1", "x", "5000000000", "12", "7", "42", "0")

	assert.Equal(t, 3, strings.Count(out, "Invalid value. Please enter an integer.\n"))
	assert.Contains(t, out, "Invalid value. Please enter a 32-bit integer.\n")
	assert.Contains(t, out, "Inserted 12\n")
	assert.Contains(t, out, "Inorder: 12 \n")
	assert.Contains(t, out, "Unknown option. Try again.\n")
}

func TestMenuGraphical(t *testing.T) {
	lines := insertLines("50", "30", "70")
	lines = append(lines, "5", "0")
	out, _ := runScript(t, lines...)

	indent := strings.Repeat(" ", 10)
	assert.Contains(t, out, "Tree (rotated by 90 degrees):\n\n"+indent+"70\n\n50\n\n"+indent+"30\n")
}

func TestMenuEOF(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, runMenu(strings.NewReader("1\n"), &out, &errOut))
	require.NoError(t, runMenu(strings.NewReader(""), &out, &errOut))
}

func TestMenuFiles(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "tree.txt")
	binPath := filepath.Join(dir, "tree.bin")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "numbers.txt"), []byte("5 3 8 oops 9"), 0o644))

	lines := insertLines("50", "30", "70")
	lines = append(lines,
		"9", textPath,
		"11", binPath,
		"10", filepath.Join(dir, "numbers.txt"),
		"7",
		"12", binPath,
		"7",
		"0",
	)
	out, errOut := runScript(t, lines...)

	assert.Empty(t, errOut)
	assert.Contains(t, out, "Tree saved (text) to file: "+textPath+"\n")
	assert.Contains(t, out, "Tree saved (binary) to file: "+binPath+"\n")
	assert.Contains(t, out, "Read and added 3 numbers from file: ")
	assert.Contains(t, out, "Inorder: 3 5 8 30 50 70 \n")
	assert.Contains(t, out, "Tree loaded (binary) from file: "+binPath+"\n")
	assert.Contains(t, out, "Inorder: 30 50 70 \n")

	data, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, "30\n50\n70\n", string(data))
}

func TestMenuFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "tree")

	lines := insertLines("50")
	lines = append(lines,
		"10", missing,
		"7",
		"9", missing,
		"11", missing,
		"12", missing,
		"7",
		"0",
	)
	out, errOut := runScript(t, lines...)

	assert.Equal(t, 4, strings.Count(errOut, "Error: "))
	assert.Contains(t, errOut, missing)
	assert.NotContains(t, out, "Read and added")
	assert.Contains(t, out, "Inorder: 50 \n")
	// a failed binary load leaves an empty working tree
	assert.Contains(t, out, "Inorder: [tree is empty]\n")
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "50", formatPath([]bst.Key{50}))
	assert.Equal(t, "50 -> 30 -> -4", formatPath([]bst.Key{50, 30, -4}))
}

func TestMenuQuiet(t *testing.T) {
	quiet = true
	t.Cleanup(func() { quiet = false })

	dir := t.TempDir()
	binPath := filepath.Join(dir, "tree.bin")

	lines := insertLines("50", "30")
	lines = append(lines, "2", "30", "11", binPath, "12", binPath, "7", "3", "0")
	out, errOut := runScript(t, lines...)

	assert.Empty(t, errOut)
	assert.NotContains(t, out, "Inserted")
	assert.NotContains(t, out, "Removed")
	assert.NotContains(t, out, "Tree saved")
	assert.NotContains(t, out, "Tree loaded")
	assert.NotContains(t, out, "cleared")
	assert.NotContains(t, out, "Exiting")
	// requested output is still printed
	assert.Contains(t, out, "Inorder: 50 \n")
}
