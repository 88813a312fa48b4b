package editor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/wordz/internal/enrich"
	"github.com/abhisek/wordz/internal/llm"
	"github.com/abhisek/wordz/internal/router"
	"github.com/abhisek/wordz/internal/screen"
	"github.com/abhisek/wordz/internal/screen/screentest"
	"github.com/abhisek/wordz/internal/words"
)

func hasMsg[T any](msgs []any) bool {
	for _, m := range msgs {
		if _, ok := m.(T); ok {
			return true
		}
	}
	return false
}

func msgsOf(t *testing.T, s screen.Screen, key string) []any {
	t.Helper()
	_, cmd := s.Update(screentest.Key(key))
	var out []any
	for _, m := range screentest.Msgs(cmd) {
		out = append(out, m)
	}
	return out
}

func TestEditor_PrefillsNotes(t *testing.T) {
	env := screentest.Env("apple")
	want := words.Notes{
		IPA:           "ˈæp.əl",
		TongueTwister: true,
		Details:       []words.Detail{{Meaning: "a fruit", Examples: []string{"An apple a day."}, POS: []string{"n"}}},
	}
	env.Session.Model.SetNotes("apple", want)

	s := New(env, "apple")
	got := s.Notes()
	if got.IPA != want.IPA || !got.TongueTwister {
		t.Errorf("Notes = %+v", got)
	}
	if len(got.Details) != 1 || got.Details[0].Meaning != "a fruit" || got.Details[0].Examples[0] != "An apple a day." {
		t.Errorf("Details = %+v", got.Details)
	}
	if s.Title() != "Edit · apple" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestEditor_TypingGoesToFocusedField(t *testing.T) {
	env := screentest.Env("apple")
	s := New(env, "apple")
	screentest.Type(s, "qwe")
	if got := s.ipa.Value(); got != "qwe" {
		t.Errorf("ipa = %q, want qwe", got)
	}
	if !s.CapturesInput() {
		t.Error("editor should capture input")
	}
}

func TestEditor_SaveStoresNotes(t *testing.T) {
	env := screentest.Env("apple")
	s := New(env, "apple")
	s.ipa.SetValue("ˈæp.əl")
	s.details[0].meaning.SetValue("a fruit")
	s.Update(screentest.Key("ctrl+t"))

	msgs := msgsOf(t, s, "ctrl+s")
	if !hasMsg[router.PopScreenMsg](msgs) {
		t.Error("save should pop the editor")
	}
	n := env.Session.Model.NotesFor("apple")
	if n.IPA != "ˈæp.əl" || !n.TongueTwister {
		t.Errorf("stored notes = %+v", n)
	}
	if len(n.Details) != 1 || n.Details[0].Meaning != "a fruit" {
		t.Errorf("stored details = %+v", n.Details)
	}
}

func TestEditor_EscDiscards(t *testing.T) {
	env := screentest.Env("apple")
	s := New(env, "apple")
	s.ipa.SetValue("x")
	msgs := msgsOf(t, s, "esc")
	if !hasMsg[router.PopScreenMsg](msgs) {
		t.Error("esc should pop")
	}
	if env.Session.Model.NotesFor("apple").IPA != "" {
		t.Error("esc must not store anything")
	}
}

func TestEditor_AddAndDeleteMeaning(t *testing.T) {
	s := New(screentest.Env("apple"), "apple")
	s.Update(screentest.Key("ctrl+n"))
	if len(s.details) != 2 {
		t.Fatalf("details = %d, want 2", len(s.details))
	}
	if s.focus != 1+fieldsPerDetail {
		t.Errorf("focus = %d, want the new meaning", s.focus)
	}
	s.Update(screentest.Key("ctrl+d"))
	if len(s.details) != 1 {
		t.Errorf("details = %d, want 1", len(s.details))
	}
	s.Update(screentest.Key("ctrl+d"))
	if len(s.details) != 1 {
		t.Error("the last meaning is replaced by an empty one, not dropped")
	}
}

func TestEditor_TabWraps(t *testing.T) {
	s := New(screentest.Env("apple"), "apple")
	for range s.fieldCount() {
		s.Update(screentest.Key("tab"))
	}
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0 after a full cycle", s.focus)
	}
	s.Update(screentest.Key("shift+tab"))
	if s.focus != s.fieldCount()-1 {
		t.Errorf("focus = %d, want last field", s.focus)
	}
}

func TestEditor_Rename(t *testing.T) {
	env := screentest.Env("aple")
	s := New(env, "aple")
	s.Update(screentest.Key("ctrl+r"))
	if !s.renaming {
		t.Fatal("ctrl+r should open the rename prompt")
	}
	s.rename.SetValue("apple")
	s.Update(screentest.Key("enter"))

	if s.renaming {
		t.Error("rename prompt should close")
	}
	if s.Word() != "apple" {
		t.Errorf("word = %q, want apple", s.Word())
	}
	if !env.Session.Model.Contains("apple") || env.Session.Model.Contains("aple") {
		t.Error("model not renamed")
	}
}

func TestEditor_RenameIntoRemovedFails(t *testing.T) {
	env := screentest.Env("aple", "apple")
	env.Session.Remove("apple")
	s := New(env, "aple")
	s.Update(screentest.Key("ctrl+r"))
	s.rename.SetValue("apple")
	s.Update(screentest.Key("enter"))

	if !s.renaming || s.err == "" {
		t.Error("expected the prompt to stay open with an error")
	}
	if s.Word() != "aple" {
		t.Errorf("word = %q, want aple", s.Word())
	}
}

func TestEditor_EnrichWithoutProvider(t *testing.T) {
	s := New(screentest.Env("apple"), "apple")
	msgs := msgsOf(t, s, "ctrl+e")
	if !hasMsg[screen.StatusMsg](msgs) {
		t.Error("expected a status message")
	}
}

func TestEditor_EnrichFillsEmptyFields(t *testing.T) {
	env := screentest.Env("apple")
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"ipa": "/ˈæp.əl/", "details": [{"meaning": "a round fruit", "examples": ["Eat an apple."], "pos": ["n"]}]}`)})
	env.Enrich = enrich.NewService(mock, enrich.DefaultConfig())

	s := New(env, "apple")
	s.Update(screentest.Key("ctrl+e"))
	if !s.waiting {
		t.Fatal("expected a pending request")
	}

	deadline := time.Now().Add(5 * time.Second)
	for env.Enrich.Busy() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Update(enrichTickMsg{})

	if s.waiting {
		t.Error("request should be finished")
	}
	n := s.Notes()
	if n.IPA != "ˈæp.əl" {
		t.Errorf("IPA = %q", n.IPA)
	}
	if len(n.Details) != 1 || n.Details[0].Meaning != "a round fruit" {
		t.Errorf("Details = %+v", n.Details)
	}
	if env.Session.Model.NotesFor("apple").IPA != "" {
		t.Error("suggestions are stored only on save")
	}
}

func TestEditor_KeyHints(t *testing.T) {
	s := New(screentest.Env("apple"), "apple")
	var keys []string
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	joined := strings.Join(keys, " ")
	if strings.Contains(joined, "Ctrl+E") {
		t.Error("suggest hint shown without a provider")
	}
	if !strings.Contains(joined, "Ctrl+S") {
		t.Error("missing save hint")
	}
}

func TestExpression_Save(t *testing.T) {
	env := screentest.Env("apple")
	s := NewExpression(env)
	s.phrase.SetValue("Break the ice")
	s.meaning.SetValue("start a conversation")

	msgs := msgsOf(t, s, "ctrl+s")
	if !hasMsg[router.PopScreenMsg](msgs) {
		t.Error("save should pop")
	}
	m := env.Session.Model
	if len(m.Expressions) != 1 || m.Expressions[0] != "Break the ice" {
		t.Errorf("Expressions = %v", m.Expressions)
	}
	if n := m.NotesFor("break the ice"); len(n.Details) != 1 {
		t.Errorf("details = %+v", n.Details)
	}
}

func TestExpression_RejectsEmpty(t *testing.T) {
	env := screentest.Env("apple")
	s := NewExpression(env)
	s.phrase.SetValue("break the ice")
	s.Update(screentest.Key("ctrl+s"))
	if s.err == "" {
		t.Error("expected an error without meaning or examples")
	}
	if len(env.Session.Model.Expressions) != 0 {
		t.Error("nothing should be stored")
	}
}
