package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordz/internal/progress"
	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screen/screentest"
	"github.com/abhisek/wordz/internal/screens/addwords"
	"github.com/abhisek/wordz/internal/screens/summary"
	"github.com/abhisek/wordz/internal/words"
)

// send runs msg through the model and follows navigation commands so the
// router sees pushes and pops.
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func follow(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	switch msg := screentest.Msg(cmd).(type) {
	case router.PushScreenMsg, router.PopScreenMsg:
		m, _ = send(t, m, msg)
	}
	return m
}

func TestApp_QuitKeyShowsSummary(t *testing.T) {
	m := newAppModel(screentest.Env("apple"))

	m, cmd := send(t, m, screentest.Key("q"))
	m = follow(t, m, cmd)
	_, ok := m.router.Active().(*summary.SummaryScreen)
	require.True(t, ok, "q should push the summary")
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = send(t, m, screentest.Key("q"))
	require.NotNil(t, cmd)
	_, ok = cmd().(tea.QuitMsg)
	assert.True(t, ok, "q on the summary should quit")
}

func TestApp_QuitKeyNotInterceptedWhileTyping(t *testing.T) {
	env := screentest.Env("apple")
	m := newAppModel(env)
	m, _ = send(t, m, router.PushScreenMsg{Screen: addwords.New(env)})
	require.IsType(t, &addwords.AddWordsScreen{}, m.router.Active())

	m, _ = send(t, m, screentest.Key("q"))
	m, _ = send(t, m, screentest.Key("q"))
	m, _ = send(t, m, screentest.Key("ctrl+s"))

	assert.IsType(t, &addwords.AddWordsScreen{}, m.router.Active())
	assert.True(t, env.Session.Model.Contains("qq"), "typed keys should reach the screen")
}

func TestApp_StatusClearedByKey(t *testing.T) {
	m := newAppModel(screentest.Env("apple"))

	m, _ = send(t, m, screen.StatusMsg("saved"))
	assert.Equal(t, "saved", m.status)

	m, _ = send(t, m, screentest.Key("down"))
	assert.Empty(t, m.status)
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(screentest.Env("apple"))
	_, cmd := send(t, m, screentest.Key("ctrl+c"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_HelpToggle(t *testing.T) {
	m := newAppModel(screentest.Env("apple"))

	m, _ = send(t, m, screentest.Key("?"))
	assert.True(t, m.showHelp)

	m, cmd := send(t, m, screentest.Key("b"))
	assert.False(t, m.showHelp, "any key closes help")
	assert.Nil(t, cmd, "the closing key is not forwarded")
	assert.Equal(t, 1, m.router.Depth())
}

func TestShutdown_SavesAndBacksUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")
	st := progress.New(path, []string{"apple", "banana"}, progress.Options{})
	m := words.New(st.Base())
	m.ClassifyKnown("apple")
	log := slog.New(slog.DiscardHandler)

	require.NoError(t, Shutdown(st, m, true, log))
	_, err := os.Stat(path)
	require.NoError(t, err)
	backups, err := st.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	require.NoError(t, Shutdown(st, m, true, log))
	backups, err = st.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 1, "unchanged progress should not be backed up again")

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Known.Has("apple"))
}

func TestShutdown_NoBackup(t *testing.T) {
	dir := t.TempDir()
	st := progress.New(filepath.Join(dir, "progress.json"), nil, progress.Options{})

	require.NoError(t, Shutdown(st, words.New(nil), false, slog.New(slog.DiscardHandler)))
	_, err := os.Stat(st.BackupDir())
	assert.True(t, os.IsNotExist(err))
}

func TestShutdown_NilStore(t *testing.T) {
	assert.NoError(t, Shutdown(nil, words.New(nil), true, nil))
}

func TestShutdown_SaveError(t *testing.T) {
	dir := t.TempDir()
	st := progress.New(filepath.Join(dir, "missing", "sub", "progress.json"), nil, progress.Options{})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "missing"), []byte("file"), 0o644))

	err := Shutdown(st, words.New(nil), false, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save progress")
}
