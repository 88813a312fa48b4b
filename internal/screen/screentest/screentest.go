// Package screentest builds environments and key presses for screen tests.
package screentest

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/session"
	"github.com/abhisek/wordz/internal/words"
)

// Today is the fixed clock of environments built by Env.
var Today = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

// Env returns an environment over a fresh model of vocab with a seeded
// random source, no saver and no services.
func Env(vocab ...string) *screen.Env {
	m := words.New(vocab)
	m.Now = func() time.Time { return Today }
	s := session.New(m, session.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	return &screen.Env{Session: s}
}

var named = map[string]rune{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"space":     tea.KeySpace,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"end":       tea.KeyEnd,
}

// Key builds a key press from its string form, e.g. "k", "enter",
// "ctrl+s" or "shift+tab".
func Key(s string) tea.KeyPressMsg {
	var mod tea.KeyMod
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			mod |= tea.ModCtrl
			s = strings.TrimPrefix(s, "ctrl+")
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mod |= tea.ModShift
			s = strings.TrimPrefix(s, "shift+")
			continue
		}
		break
	}
	if code, ok := named[s]; ok {
		return tea.KeyPressMsg{Code: code, Mod: mod}
	}
	r := []rune(s)[0]
	if mod != 0 {
		return tea.KeyPressMsg{Code: r, Mod: mod}
	}
	return tea.KeyPressMsg{Code: r, Text: s}
}

// Type feeds text to sc one rune at a time.
func Type(sc screen.Screen, text string) screen.Screen {
	for _, r := range text {
		sc, _ = sc.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return sc
}

// Msg runs cmd and returns its message, or nil for a nil command. Batched
// commands yield the first non-nil message.
func Msg(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := Msg(c); m != nil {
				return m
			}
		}
		return nil
	}
	return msg
}

// Msgs runs cmd and flattens batches into a list of messages.
func Msgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Msgs(c)...)
	}
	return out
}
