package snapshot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/wordz/internal/words"
)

// Decode parses a persisted document and rebuilds a model on top of the
// base vocabulary. Only a document that is not a JSON object fails; every
// field is validated on its own and malformed entries are dropped.
func Decode(data []byte, base []string) (*words.Model, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("parse document: not an object")
	}
	return apply(fields, base), nil
}

func apply(f map[string]json.RawMessage, base []string) *words.Model {
	m := words.New(nil)
	m.SetBase(base)

	m.User = words.NewSet(stringList(f["user_words"])...)
	vocab := words.NewSet(base...)
	for k := range m.User {
		vocab[k] = struct{}{}
	}
	m.SetVocabulary(vocab.Sorted())

	m.Removed = words.NewSet(stringList(f["removed_words"])...)

	var learned []string
	for _, w := range stringList(f["learned_words"]) {
		if k := words.Key(w); k != "" && !m.Removed.Has(k) {
			learned = append(learned, k)
		}
	}
	m.LearnedSession = words.UniqueFold(learned)

	m.Details = decodeDetails(f["word_details"])
	m.IPA = decodeIPA(f["word_ipa"])

	live := func(w string) bool {
		return m.Contains(w) && !m.Removed.Has(w)
	}
	m.Displayed = words.NewSet(filter(stringList(f["displayed_words"]), live)...)
	m.History = lowerAll(filter(stringList(f["word_history"]), live))
	m.Known = words.NewSet(filter(stringList(f["known_words"]), live)...)
	m.New = words.NewSet(filter(stringList(f["new_words"]), func(w string) bool {
		return live(w) && !m.Known.Has(w)
	})...)

	m.KnownSeq = healSequence(stringList(f["known_sequence"]), m.Known)
	m.NewSeq = healSequence(stringList(f["new_sequence"]), m.New)

	if len(m.History) > 0 {
		m.CurrentWord = m.History[len(m.History)-1]
		var cw string
		if json.Unmarshal(f["current_word"], &cw) == nil && m.Contains(cw) {
			m.CurrentWord = words.Key(cw)
		}
		m.HistoryIndex = len(m.History) - 1
	}

	var mode string
	_ = json.Unmarshal(f["learn_order_mode"], &mode)
	m.LearnOrder, _ = words.ParseLearnOrder(mode)

	m.TongueTwisters = words.NewSet(stringList(f["tongue_twisters"])...)
	m.Expressions = decodeExpressions(f["expressions"])
	m.LearnedLog = decodeLearnedLog(f["learned_log"])
	return m
}

// stringList returns the string items of a JSON array, skipping every
// other kind of value. Anything but an array yields nil.
func stringList(raw json.RawMessage) []string {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if json.Unmarshal(it, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

func stringMap(raw json.RawMessage) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	if json.Unmarshal(raw, &m) != nil {
		return nil
	}
	return m
}

func filter(items []string, keep func(string) bool) []string {
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = words.Key(it)
	}
	return out
}

// healSequence keeps the members of set in their persisted order, then
// appends any member the sequence lost.
func healSequence(seq []string, set words.Set) []string {
	out := words.UniqueFold(lowerAll(filter(seq, set.Has)))
	have := words.NewSet(out...)
	for _, w := range set.Sorted() {
		if !have.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

func decodeDetails(raw json.RawMessage) map[string][]words.Detail {
	out := map[string][]words.Detail{}
	for k, v := range stringMap(raw) {
		var items []json.RawMessage
		if json.Unmarshal(v, &items) != nil {
			continue
		}
		var entries []words.Detail
		for _, it := range items {
			d, ok := decodeDetail(it)
			if ok {
				entries = append(entries, d)
			}
		}
		if len(entries) > 0 {
			key := words.Key(k)
			out[key] = append(out[key], entries...)
		}
	}
	return out
}

func decodeDetail(raw json.RawMessage) (words.Detail, bool) {
	obj := stringMap(raw)
	if obj == nil {
		return words.Detail{}, false
	}
	d := words.Detail{Meaning: scalarString(obj["meaning"])}
	var exs []json.RawMessage
	if json.Unmarshal(obj["examples"], &exs) == nil && exs != nil {
		for _, e := range exs {
			d.Examples = append(d.Examples, scalarString(e))
		}
	} else if ex := scalarString(obj["example"]); ex != "" {
		d.Examples = []string{ex}
	}
	var tags []json.RawMessage
	if json.Unmarshal(obj["pos"], &tags) == nil {
		for _, t := range tags {
			d.POS = append(d.POS, strings.ToLower(scalarString(t)))
		}
	}
	d = d.Clean()
	return d, !d.Empty()
}

// scalarString renders a JSON scalar as trimmed text. Strings are taken
// as-is, numbers and booleans by their literal, everything else is empty.
func scalarString(raw json.RawMessage) string {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func decodeIPA(raw json.RawMessage) map[string]string {
	out := map[string]string{}
	for k, v := range stringMap(raw) {
		var s string
		if json.Unmarshal(v, &s) != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" && words.Key(k) != "" {
			out[words.Key(k)] = s
		}
	}
	return out
}

func decodeLearnedLog(raw json.RawMessage) map[string]string {
	out := map[string]string{}
	for k, v := range stringMap(raw) {
		var s string
		if json.Unmarshal(v, &s) != nil {
			continue
		}
		if key, val := words.Key(k), strings.TrimSpace(s); key != "" && val != "" {
			out[key] = val
		}
	}
	return out
}

func decodeExpressions(raw json.RawMessage) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, s := range stringList(raw) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
