package words

import (
	"fmt"
	"slices"
	"strings"
)

// POSTags is the fixed part-of-speech vocabulary for details.
var POSTags = []string{"n", "v", "adj", "adv", "prep", "conj"}

// Detail is one meaning of a word or expression.
type Detail struct {
	Meaning  string   `json:"meaning"`
	Examples []string `json:"examples"`
	POS      []string `json:"pos"`
}

// Empty reports whether d carries no meaning, examples or tags.
func (d Detail) Empty() bool {
	return d.Meaning == "" && len(d.Examples) == 0 && len(d.POS) == 0
}

// Clean trims d's fields, drops blank examples and keeps only known
// part-of-speech tags, each once, in their original order.
func (d Detail) Clean() Detail {
	out := Detail{
		Meaning:  strings.TrimSpace(d.Meaning),
		Examples: []string{},
		POS:      []string{},
	}
	for _, ex := range d.Examples {
		if ex = strings.TrimSpace(ex); ex != "" {
			out.Examples = append(out.Examples, ex)
		}
	}
	for _, p := range d.POS {
		if slices.Contains(POSTags, p) && !slices.Contains(out.POS, p) {
			out.POS = append(out.POS, p)
		}
	}
	return out
}

// CleanDetails cleans every entry and drops the empty ones.
func CleanDetails(list []Detail) []Detail {
	var out []Detail
	for _, d := range list {
		if c := d.Clean(); !c.Empty() {
			out = append(out, c)
		}
	}
	return out
}

// Notes are the user-editable annotations of one word.
type Notes struct {
	Details       []Detail
	IPA           string
	TongueTwister bool
}

// HasContent reports whether n would store anything.
func (n Notes) HasContent() bool {
	return len(CleanDetails(n.Details)) > 0 || strings.TrimSpace(n.IPA) != "" || n.TongueTwister
}

// NotesFor returns the stored notes of w.
func (m *Model) NotesFor(w string) Notes {
	k := Key(w)
	return Notes{
		Details:       slices.Clone(m.Details[k]),
		IPA:           m.IPA[k],
		TongueTwister: m.TongueTwisters.Has(k),
	}
}

// SetNotes replaces the notes of w. Empty fields clear what was stored.
func (m *Model) SetNotes(w string, n Notes) {
	m.applyNotes(Key(w), n, false)
}

// MergeNotes stores the non-empty fields of n and leaves the rest alone.
// It reports whether anything was stored.
func (m *Model) MergeNotes(w string, n Notes) bool {
	if !n.HasContent() {
		return false
	}
	m.applyNotes(Key(w), n, true)
	return true
}

func (m *Model) applyNotes(k string, n Notes, onlyFilled bool) {
	if k == "" {
		return
	}
	if items := CleanDetails(n.Details); len(items) > 0 {
		m.Details[k] = items
	} else if !onlyFilled {
		delete(m.Details, k)
	}
	if ipa := strings.TrimSpace(n.IPA); ipa != "" {
		m.IPA[k] = ipa
	} else if !onlyFilled {
		delete(m.IPA, k)
	}
	if n.TongueTwister {
		m.TongueTwisters.Add(k)
	} else if !onlyFilled {
		m.TongueTwisters.Remove(k)
	}
}

// AddExpression stores a phrase with one meaning. The phrase is kept
// verbatim; its details live under its lowercase form. It reports whether
// the phrase was new to the list.
func (m *Model) AddExpression(phrase, meaning string, examples []string) (bool, error) {
	phrase = strings.TrimSpace(phrase)
	d := Detail{Meaning: meaning, Examples: examples}.Clean()
	if phrase == "" || (d.Meaning == "" && len(d.Examples) == 0) {
		return false, fmt.Errorf("add expression %q: %w", phrase, ErrInvalidExpression)
	}
	added := !slices.Contains(m.Expressions, phrase)
	if added {
		m.Expressions = append(m.Expressions, phrase)
	}
	k := Key(phrase)
	m.Details[k] = append(m.Details[k], d)
	return added, nil
}

// RemoveExpression drops the phrase and its notes.
func (m *Model) RemoveExpression(phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	i := slices.Index(m.Expressions, phrase)
	if i < 0 {
		return false
	}
	m.Expressions = slices.Delete(m.Expressions, i, i+1)
	k := Key(phrase)
	if !slices.ContainsFunc(m.Expressions, func(e string) bool { return Key(e) == k }) {
		delete(m.Details, k)
		m.TongueTwisters.Remove(k)
	}
	return true
}
