// Package words holds the vocabulary and its classification state.
//
// Every stored word is in canonical form (trimmed, lowercased). A word in
// the vocabulary is in exactly one of four states: unclassified, known,
// new or removed. The Model enforces that on every mutation; callers never
// edit the sets directly except when reconstructing a model from storage.
package words

import (
	"time"
	"unicode/utf8"
)

// DateLayout is the format of learned-log dates.
const DateLayout = "2006-01-02"

// LearnOrder selects how learn mode walks the new words.
type LearnOrder string

const (
	OrderRandom LearnOrder = "Random"
	OrderNewest LearnOrder = "Newest"
	OrderOldest LearnOrder = "Oldest"
)

// LearnOrders lists every valid order in display order.
var LearnOrders = []LearnOrder{OrderRandom, OrderNewest, OrderOldest}

// ParseLearnOrder maps s to a LearnOrder. Unknown values fall back to
// OrderRandom with ok=false.
func ParseLearnOrder(s string) (LearnOrder, bool) {
	for _, o := range LearnOrders {
		if string(o) == s {
			return o, true
		}
	}
	return OrderRandom, false
}

// Model is the complete vocabulary state.
type Model struct {
	vocab      Set
	vocabOrder []string
	base       Set

	Known    Set
	New      Set
	Removed  Set
	User     Set
	KnownSeq []string
	NewSeq   []string

	// LearnedSession lists words marked known, oldest first.
	LearnedSession []string
	// LearnedLog maps a word to the date (DateLayout) it was last learned.
	LearnedLog map[string]string

	Details        map[string][]Detail
	IPA            map[string]string
	TongueTwisters Set
	Expressions    []string

	Displayed    Set
	History      []string
	CurrentWord  string
	HistoryIndex int

	LearnOrder LearnOrder

	// Now is the clock used for learned-log dates.
	Now func() time.Time
}

// New creates an empty model whose vocabulary is base.
func New(base []string) *Model {
	m := &Model{
		Known:          Set{},
		New:            Set{},
		Removed:        Set{},
		User:           Set{},
		LearnedLog:     map[string]string{},
		Details:        map[string][]Detail{},
		IPA:            map[string]string{},
		TongueTwisters: Set{},
		Displayed:      Set{},
		HistoryIndex:   -1,
		LearnOrder:     OrderRandom,
		Now:            time.Now,
	}
	m.SetBase(base)
	m.SetVocabulary(base)
	return m
}

// SetBase records the shipped dictionary words. Spellings outside it are
// kept in User so they survive a reload.
func (m *Model) SetBase(list []string) {
	m.base = NewSet(list...)
}

// SetVocabulary replaces the vocabulary with the canonical forms of list.
func (m *Model) SetVocabulary(list []string) {
	m.vocab = NewSet(list...)
	m.vocabOrder = m.vocab.Sorted()
}

// Vocabulary returns the words sorted case-insensitively. The returned
// slice must not be modified.
func (m *Model) Vocabulary() []string {
	return m.vocabOrder
}

// Size returns the number of vocabulary words.
func (m *Model) Size() int {
	return len(m.vocabOrder)
}

// Contains reports whether w is in the vocabulary, case-insensitively.
func (m *Model) Contains(w string) bool {
	return m.vocab.Has(w)
}

func (m *Model) addVocab(k string) {
	if m.vocab.Add(k) {
		m.vocabOrder = m.vocab.Sorted()
	}
}

func (m *Model) dropVocab(k string) {
	if m.vocab.Remove(k) {
		m.vocabOrder = m.vocab.Sorted()
	}
}

// Today returns the current date in DateLayout.
func (m *Model) Today() string {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	return now().Format(DateLayout)
}

// State reports the classification of w.
func (m *Model) State(w string) State {
	k := Key(w)
	switch {
	case m.Removed.Has(k):
		return StateRemoved
	case m.Known.Has(k):
		return StateKnown
	case m.New.Has(k):
		return StateNew
	default:
		return StateUnclassified
	}
}

// State is a word's classification.
type State int

const (
	StateUnclassified State = iota
	StateKnown
	StateNew
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateKnown:
		return "known"
	case StateNew:
		return "new"
	case StateRemoved:
		return "removed"
	default:
		return "unclassified"
	}
}

// AddWords parses raw, one candidate per line, and adds every candidate
// not already in the vocabulary or removed. Added words become user words
// and are classified new unless already known. It returns the number of
// words added.
func (m *Model) AddWords(raw string) int {
	added := 0
	for _, line := range splitLines(raw) {
		w := NormalizeLine(line)
		if w == "" || m.vocab.Has(w) || m.Removed.Has(w) {
			continue
		}
		m.vocab.Add(w)
		m.User.Add(w)
		if !m.Known.Has(w) {
			m.classifyNew(w)
		}
		added++
	}
	if added > 0 {
		m.vocabOrder = m.vocab.Sorted()
	}
	return added
}

// AddUnclassified adds words to the vocabulary as user words without
// classifying them. Removed and existing words are skipped. It returns
// the words that were added.
func (m *Model) AddUnclassified(list []string) []string {
	var added []string
	for _, w := range list {
		k := Key(w)
		if utf8.RuneCountInString(k) < minWordLen || m.vocab.Has(k) || m.Removed.Has(k) {
			continue
		}
		m.vocab.Add(k)
		m.User.Add(k)
		added = append(added, k)
	}
	if len(added) > 0 {
		m.vocabOrder = m.vocab.Sorted()
	}
	return added
}

// ClassifyKnown moves w to the known set. Removed or empty words are
// ignored. It reports whether the state changed.
func (m *Model) ClassifyKnown(w string) bool {
	k := Key(w)
	if k == "" || m.Removed.Has(k) {
		return false
	}
	if m.Known.Has(k) && containsKey(m.KnownSeq, k) && !m.New.Has(k) {
		return false
	}
	m.classifyKnown(k)
	return true
}

// ClassifyNew moves w to the new set. Removed or empty words are ignored.
// It reports whether the state changed.
func (m *Model) ClassifyNew(w string) bool {
	k := Key(w)
	if k == "" || m.Removed.Has(k) {
		return false
	}
	if m.New.Has(k) && containsKey(m.NewSeq, k) && !m.Known.Has(k) {
		return false
	}
	m.classifyNew(k)
	return true
}

func (m *Model) classifyKnown(k string) {
	m.New.Remove(k)
	m.NewSeq = without(m.NewSeq, k)
	m.Known.Add(k)
	if !containsKey(m.KnownSeq, k) {
		m.KnownSeq = append(m.KnownSeq, k)
	}
}

func (m *Model) classifyNew(k string) {
	m.Known.Remove(k)
	m.KnownSeq = without(m.KnownSeq, k)
	m.New.Add(k)
	if !containsKey(m.NewSeq, k) {
		m.NewSeq = append(m.NewSeq, k)
	}
}

// MarkKnownNoAdvance classifies w as known and records it as learned
// today. A word learned again keeps a single log entry with the latest
// date.
func (m *Model) MarkKnownNoAdvance(w string) bool {
	k := Key(w)
	if k == "" || m.Removed.Has(k) {
		return false
	}
	m.classifyKnown(k)
	if !containsKey(m.LearnedSession, k) {
		m.LearnedSession = append(m.LearnedSession, k)
	}
	m.LearnedLog[k] = m.Today()
	return true
}

// Remove marks w as removed and purges it from classification and
// learned state. The word stays in the vocabulary but is never eligible
// again until restored.
func (m *Model) Remove(w string) bool {
	k := Key(w)
	if k == "" {
		return false
	}
	changed := m.Removed.Add(k)
	m.Known.Remove(k)
	m.New.Remove(k)
	m.KnownSeq = without(m.KnownSeq, k)
	m.NewSeq = without(m.NewSeq, k)
	m.LearnedSession = without(m.LearnedSession, k)
	delete(m.LearnedLog, k)
	return changed
}

// Restore takes w out of the removed set and classifies it new.
func (m *Model) Restore(w string) bool {
	k := Key(w)
	if !m.Removed.Remove(k) {
		return false
	}
	m.classifyNew(k)
	return true
}

// Eligible reports whether w may still be drawn in browse mode: it is in
// the vocabulary and neither displayed, classified nor removed.
func (m *Model) Eligible(w string) bool {
	k := Key(w)
	return m.vocab.Has(k) &&
		!m.Displayed.Has(k) &&
		!m.Known.Has(k) &&
		!m.New.Has(k) &&
		!m.Removed.Has(k)
}

// Remaining counts the eligible vocabulary words.
func (m *Model) Remaining() int {
	n := 0
	for _, w := range m.vocabOrder {
		if m.Eligible(w) {
			n++
		}
	}
	return n
}

// PushHistory records w as shown: it joins the displayed set, is appended
// to the history (trimmed to max entries) and becomes the current word.
func (m *Model) PushHistory(w string, max int) {
	k := Key(w)
	if k == "" {
		return
	}
	m.Displayed.Add(k)
	if len(m.History) == 0 || m.History[len(m.History)-1] != k {
		m.History = append(m.History, k)
		if max > 0 && len(m.History) > max {
			m.History = append([]string(nil), m.History[len(m.History)-max:]...)
		}
	}
	m.HistoryIndex = len(m.History) - 1
	m.CurrentWord = k
}
