package review

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screen/screentest"
	"github.com/abhisek/wordz/internal/session"
)

// learnedEnv has apple learned today and banana learned in January.
func learnedEnv(t *testing.T) *screen.Env {
	t.Helper()
	env := screentest.Env("apple", "banana", "cherry")
	m := env.Session.Model
	m.MarkKnownNoAdvance("apple")
	m.MarkKnownNoAdvance("banana")
	m.LearnedLog["banana"] = "2024-01-15"
	return env
}

func TestReview_StartsWithFilterForm(t *testing.T) {
	s := New(learnedEnv(t))
	if s.phase != phaseFilter || !s.CapturesInput() {
		t.Error("review should open on the filter form")
	}
	if !strings.Contains(s.View(80, 24), "Review filter") {
		t.Error("expected the filter form")
	}
}

func TestReview_NoFilterUsesAllLearned(t *testing.T) {
	env := learnedEnv(t)
	s := New(env)
	s.Update(screentest.Key("enter"))

	if s.phase != phaseReview {
		t.Fatal("enter should start the review")
	}
	if s.size != 2 {
		t.Errorf("pool size = %d, want 2", s.size)
	}
	if s.word != "apple" && s.word != "banana" {
		t.Errorf("word = %q, want a learned word", s.word)
	}
	if env.Session.Mode != session.ModeReview {
		t.Errorf("mode = %v, want review", env.Session.Mode)
	}
	if s.CapturesInput() {
		t.Error("review phase should not capture input")
	}
}

func TestReview_DateFilter(t *testing.T) {
	s := New(learnedEnv(t))
	s.from.SetValue("01.05")
	s.Update(screentest.Key("enter"))

	if s.size != 1 || s.word != "apple" {
		t.Errorf("size = %d word = %q, want only apple", s.size, s.word)
	}
	if !strings.Contains(s.filterDesc, "from 2024-05-01") {
		t.Errorf("filterDesc = %q", s.filterDesc)
	}
}

func TestReview_TongueTwisterFilter(t *testing.T) {
	env := learnedEnv(t)
	env.Session.Model.TongueTwisters.Add("banana")
	s := New(env)
	s.Update(screentest.Key("ctrl+t"))
	s.Update(screentest.Key("enter"))
	if s.size != 1 || s.word != "banana" {
		t.Errorf("size = %d word = %q, want only banana", s.size, s.word)
	}
}

func TestReview_EmptyPool(t *testing.T) {
	s := New(screentest.Env("apple"))
	s.Update(screentest.Key("enter"))
	if s.word != "" {
		t.Fatalf("word = %q, want none", s.word)
	}
	if !strings.Contains(s.View(80, 24), "Nothing to review") {
		t.Error("expected the empty message")
	}
}

func TestReview_FilterKeyReturnsToForm(t *testing.T) {
	s := New(learnedEnv(t))
	s.Update(screentest.Key("enter"))
	s.Update(screentest.Key("f"))
	if s.phase != phaseFilter {
		t.Error("f should reopen the filter")
	}
}

func TestReview_RemembersFilter(t *testing.T) {
	env := learnedEnv(t)
	s := New(env)
	s.to.SetValue("2024-02-01")
	s.Update(screentest.Key("enter"))

	again := New(env)
	if again.to.Value() != "2024-02-01" {
		t.Errorf("to = %q, want the last filter", again.to.Value())
	}
}

func TestReview_Heard(t *testing.T) {
	s := New(learnedEnv(t))
	s.Update(screentest.Key("enter"))
	word := s.word

	s.Update(heardMsg{Text: strings.ToUpper(word) + "."})
	if !strings.Contains(s.View(80, 24), "✓") {
		t.Error("expected a match mark")
	}
	s.Update(heardMsg{Text: "something else"})
	if !strings.Contains(s.View(80, 24), "✗") {
		t.Error("expected a miss mark")
	}
	_, cmd := s.Update(heardMsg{Err: errors.New("no microphone")})
	if msg, ok := screentest.Msg(cmd).(screen.StatusMsg); !ok || msg != "no microphone" {
		t.Errorf("status = %v", msg)
	}
}

func TestReview_ListenWithoutSpeech(t *testing.T) {
	s := New(learnedEnv(t))
	s.Update(screentest.Key("enter"))
	_, cmd := s.Update(screentest.Key("m"))
	if _, ok := screentest.Msg(cmd).(screen.StatusMsg); !ok {
		t.Error("expected a status without speech")
	}
	if s.listening {
		t.Error("should not be listening")
	}
}

func TestReview_EscLeavesReviewMode(t *testing.T) {
	env := learnedEnv(t)
	s := New(env)
	s.Update(screentest.Key("enter"))
	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := screentest.Msg(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if env.Session.Mode != session.ModeBrowse {
		t.Errorf("mode = %v, want browse", env.Session.Mode)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		target, heard string
		want          bool
	}{
		{"apple", "apple", true},
		{"apple", " Apple! ", true},
		{"break the ice", "Break the ice.", true},
		{"apple", "apples", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.target, tt.heard); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.target, tt.heard, got, tt.want)
		}
	}
}
