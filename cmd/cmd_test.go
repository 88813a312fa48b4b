package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordz/internal/store"
	"github.com/abhisek/wordz/internal/words"
)

// execute runs the root command against files in dir and returns stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("WORDZ_BACKUP_ON_EXIT", "false")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args,
		"--progress", filepath.Join(dir, "progress.json"),
		"--db", filepath.Join(dir, "wordz.db"),
	))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWordCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "word", "add", "zyzzyva", "quixotic")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 new words")

	_, err = execute(t, dir, "word", "known", "zyzzyva")
	require.NoError(t, err)

	out, err = execute(t, dir, "word", "list", "-l", "known", "-s", "")
	require.NoError(t, err)
	assert.Contains(t, out, "zyzzyva")

	out, err = execute(t, dir, "word", "show", "zyzzyva")
	require.NoError(t, err)
	assert.Contains(t, out, "zyzzyva  [known]")

	out, err = execute(t, dir, "word", "rename", "quixotic", "quixotical")
	require.NoError(t, err)
	assert.Contains(t, out, "quixotical")

	out, err = execute(t, dir, "word", "list", "-l", "user", "-s", "quix")
	require.NoError(t, err)
	assert.Equal(t, "quixotical\n", out)
}

func TestWordList_UnknownList(t *testing.T) {
	_, err := execute(t, t.TempDir(), "word", "list", "-l", "favourites", "-s", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list")
}

func TestWordRename_IntoRemovedFails(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "word", "add", "colour", "color")
	require.NoError(t, err)
	_, err = execute(t, dir, "word", "remove", "color")
	require.NoError(t, err)

	_, err = execute(t, dir, "word", "rename", "colour", "color")
	assert.ErrorIs(t, err, words.ErrRemovedWord)
}

func TestUsageByModel(t *testing.T) {
	events := []store.LLMRequestEvent{
		{Model: "small", InputTokens: 10, OutputTokens: 5},
		{Model: "big", InputTokens: 100, OutputTokens: 50},
		{Model: "small", InputTokens: 20, OutputTokens: 5},
	}
	got := usageByModel(events)
	require.Len(t, got, 2)
	assert.Equal(t, modelUsage{Model: "small", Calls: 2, InputTokens: 30, OutputTokens: 10}, got[0])
	assert.Equal(t, "big", got[1].Model)
}

func TestWithoutNotes(t *testing.T) {
	m := words.New([]string{"apple", "banana", "cherry", "damson"})
	m.ClassifyNew("apple")
	m.ClassifyNew("banana")
	m.ClassifyKnown("cherry")
	m.SetNotes("banana", words.Notes{Details: []words.Detail{{Meaning: "a fruit"}}})

	got := withoutNotes(m, 0)
	assert.ElementsMatch(t, []string{"apple", "cherry"}, got)
	assert.Len(t, withoutNotes(m, 1), 1)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "ab", truncate("ab", 3))
	assert.Equal(t, "$0.0012", formatCost(0.00123))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.NotEmpty(t, buildVersion())
}
