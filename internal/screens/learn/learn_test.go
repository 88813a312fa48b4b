package learn

import (
	"strings"
	"testing"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screen/screentest"
	"github.com/abhisek/wordz/internal/words"
)

func newLearn(t *testing.T, fresh ...string) (*LearnScreen, *screen.Env) {
	t.Helper()
	env := screentest.Env(append([]string{"zebra"}, fresh...)...)
	for _, w := range fresh {
		env.Session.Model.ClassifyNew(w)
	}
	s := New(env)
	s.Init()
	return s, env
}

func TestLearn_InitShowsNewWord(t *testing.T) {
	s, env := newLearn(t, "apple", "banana")
	if !env.Session.Model.New.Has(s.word) {
		t.Errorf("shown word %q is not new", s.word)
	}
}

func TestLearn_NothingToLearn(t *testing.T) {
	s, _ := newLearn(t)
	if s.word != "" {
		t.Fatalf("word = %q, want none", s.word)
	}
	if !strings.Contains(s.View(80, 20), "Nothing to learn") {
		t.Error("expected the empty message")
	}
}

func TestLearn_MarkKnownLogsDate(t *testing.T) {
	s, env := newLearn(t, "apple", "banana")
	prev := s.word
	s.Update(screentest.Key("k"))

	m := env.Session.Model
	if !m.Known.Has(prev) {
		t.Errorf("%q should be known", prev)
	}
	if got := m.LearnedLog[prev]; got != "2024-05-10" {
		t.Errorf("LearnedLog[%q] = %q, want 2024-05-10", prev, got)
	}
	if s.word == prev {
		t.Error("expected to move on")
	}
}

func TestLearn_Remove(t *testing.T) {
	s, env := newLearn(t, "apple", "banana")
	prev := s.word
	s.Update(screentest.Key("x"))
	if !env.Session.Model.Removed.Has(prev) {
		t.Errorf("%q should be removed", prev)
	}
}

func TestLearn_CycleOrder(t *testing.T) {
	s, env := newLearn(t, "apple")
	before := env.Session.Model.LearnOrder
	_, cmd := s.Update(screentest.Key("o"))
	after := env.Session.Model.LearnOrder
	if after == before {
		t.Error("order did not change")
	}
	if after != nextOrder(before) {
		t.Errorf("order = %q, want %q", after, nextOrder(before))
	}
	if _, ok := screentest.Msg(cmd).(screen.StatusMsg); !ok {
		t.Error("expected a status message")
	}
	if !strings.Contains(s.Title(), string(after)) {
		t.Errorf("Title = %q, want order %q", s.Title(), after)
	}
}

func TestNextOrder_Wraps(t *testing.T) {
	o := words.LearnOrders[len(words.LearnOrders)-1]
	if got := nextOrder(o); got != words.LearnOrders[0] {
		t.Errorf("nextOrder(%q) = %q, want %q", o, got, words.LearnOrders[0])
	}
}

func TestLearn_ResumeAfterRename(t *testing.T) {
	s, env := newLearn(t, "aple", "banana")
	s.word = "aple"
	if _, err := env.Session.Rename("aple", "apple"); err != nil {
		t.Fatal(err)
	}
	s.Resume()
	if s.word == "aple" {
		t.Error("Resume kept the old spelling")
	}
}

func TestLearn_EscPops(t *testing.T) {
	s, _ := newLearn(t, "apple")
	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := screentest.Msg(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
