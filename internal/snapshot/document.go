// Package snapshot converts a words.Model to and from its persisted JSON
// document.
package snapshot

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/abhisek/wordz/internal/words"
)

// Document is the persisted form of a model. Fields are declared in key
// order so the encoded object has sorted keys.
type Document struct {
	CurrentWord    *string                   `json:"current_word"`
	DisplayedWords []string                  `json:"displayed_words"`
	Expressions    []string                  `json:"expressions"`
	KnownSequence  []string                  `json:"known_sequence"`
	KnownWords     []string                  `json:"known_words"`
	LearnOrderMode string                    `json:"learn_order_mode"`
	LearnedLog     map[string]string         `json:"learned_log"`
	LearnedWords   []string                  `json:"learned_words"`
	NewSequence    []string                  `json:"new_sequence"`
	NewWords       []string                  `json:"new_words"`
	RemovedWords   []string                  `json:"removed_words"`
	TongueTwisters []string                  `json:"tongue_twisters"`
	UserWords      []string                  `json:"user_words"`
	WordDetails    map[string][]words.Detail `json:"word_details"`
	WordHistory    []string                  `json:"word_history"`
	WordIPA        map[string]string         `json:"word_ipa"`
}

// Encode captures m as a document. Sets are emitted sorted
// case-insensitively and lists keep their order. The result shares no
// memory with m, so it is safe to hand to another goroutine.
func Encode(m *words.Model) Document {
	doc := Document{
		DisplayedWords: m.Displayed.Sorted(),
		Expressions:    cloneList(m.Expressions),
		KnownSequence:  cloneList(m.KnownSeq),
		KnownWords:     m.Known.Sorted(),
		LearnOrderMode: string(m.LearnOrder),
		LearnedLog:     make(map[string]string, len(m.LearnedLog)),
		LearnedWords:   cloneList(m.LearnedSession),
		NewSequence:    cloneList(m.NewSeq),
		NewWords:       m.New.Sorted(),
		RemovedWords:   m.Removed.Sorted(),
		TongueTwisters: m.TongueTwisters.Sorted(),
		UserWords:      m.User.Sorted(),
		WordDetails:    make(map[string][]words.Detail, len(m.Details)),
		WordHistory:    cloneList(m.History),
		WordIPA:        make(map[string]string, len(m.IPA)),
	}
	if m.CurrentWord != "" {
		cw := m.CurrentWord
		doc.CurrentWord = &cw
	}
	for k, v := range m.LearnedLog {
		doc.LearnedLog[k] = v
	}
	for k, list := range m.Details {
		out := make([]words.Detail, len(list))
		for i, d := range list {
			out[i] = words.Detail{
				Meaning:  d.Meaning,
				Examples: cloneList(d.Examples),
				POS:      cloneList(d.POS),
			}
		}
		doc.WordDetails[k] = out
	}
	for k, v := range m.IPA {
		doc.WordIPA[k] = v
	}
	return doc
}

// Marshal encodes doc as compact JSON with sorted keys. Non-ASCII text is
// written as UTF-8 rather than escaped.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// cloneList copies items and never returns nil, so empty lists encode
// as [] rather than null.
func cloneList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
