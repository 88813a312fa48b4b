package words

import "fmt"

// RenameOrMerge corrects the spelling of old to newRaw and returns the
// canonical word that now stands for it.
//
// When the sanitized form names a different word already in the
// vocabulary, old is merged into that word: classification is unioned
// with known taking precedence over new, details are appended after the
// canonical word's own, and old leaves the vocabulary.
func (m *Model) RenameOrMerge(old, newRaw string) (string, error) {
	clean, err := SanitizeWord(newRaw)
	if err != nil {
		return "", err
	}
	ok, nk := Key(old), Key(clean)
	if ok == "" {
		return "", ErrInvalidWord
	}
	if m.Removed.Has(nk) {
		return "", fmt.Errorf("rename %q to %q: %w", ok, nk, ErrRemovedWord)
	}
	if nk != ok && m.vocab.Has(nk) {
		m.merge(ok, nk)
		return nk, nil
	}
	m.relocate(ok, nk)
	return nk, nil
}

// relocate moves every reference to old over to nw.
func (m *Model) relocate(old, nw string) {
	m.dropVocab(old)
	m.addVocab(nw)

	wasNew := m.New.Remove(old)
	if m.Known.Remove(old) {
		m.Known.Add(nw)
	}
	if wasNew && !m.Known.Has(nw) {
		m.New.Add(nw)
	}
	m.KnownSeq = UniqueFold(replaceAll(m.KnownSeq, old, nw))
	m.NewSeq = filterOut(UniqueFold(replaceAll(m.NewSeq, old, nw)), m.Known)

	if m.Displayed.Remove(old) {
		m.Displayed.Add(nw)
	}
	m.History = replaceAll(m.History, old, nw)
	m.User.Remove(old)
	if !m.base.Has(nw) {
		m.User.Add(nw)
	}
	m.moveLearned(old, nw)
	m.moveNotes(old, nw)
	if m.CurrentWord == old {
		m.CurrentWord = nw
	}
}

// merge folds old into canonical, which must already be in the vocabulary.
func (m *Model) merge(old, canonical string) {
	oldKnown := m.Known.Remove(old)
	oldNew := m.New.Remove(old)
	switch {
	case oldKnown || m.Known.Has(canonical):
		m.classifyKnown(canonical)
	case oldNew:
		m.classifyNew(canonical)
	}
	m.KnownSeq = without(m.KnownSeq, old)
	m.NewSeq = filterOut(without(m.NewSeq, old), m.Known)

	if m.Displayed.Remove(old) {
		m.Displayed.Add(canonical)
	}
	m.History = replaceAll(m.History, old, canonical)
	m.dropVocab(old)
	m.User.Remove(old)
	m.moveLearned(old, canonical)
	m.moveNotes(old, canonical)
	if m.CurrentWord == old {
		m.CurrentWord = canonical
	}
}

func (m *Model) moveLearned(old, nw string) {
	if old == nw {
		return
	}
	if d, ok := m.LearnedLog[old]; ok {
		if _, has := m.LearnedLog[nw]; !has {
			m.LearnedLog[nw] = d
		}
		delete(m.LearnedLog, old)
	}
	m.LearnedSession = UniqueFold(replaceAll(m.LearnedSession, old, nw))
}

func (m *Model) moveNotes(old, nw string) {
	if old == nw {
		return
	}
	if src := m.Details[old]; len(src) > 0 {
		m.Details[nw] = append(append([]Detail(nil), m.Details[nw]...), src...)
	}
	delete(m.Details, old)
	if ipa := m.IPA[old]; ipa != "" && m.IPA[nw] == "" {
		m.IPA[nw] = ipa
	}
	delete(m.IPA, old)
	if m.TongueTwisters.Remove(old) {
		m.TongueTwisters.Add(nw)
	}
}

func replaceAll(items []string, old, nw string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		if Key(it) == old {
			it = nw
		}
		out[i] = it
	}
	return out
}

func filterOut(items []string, exclude Set) []string {
	out := items[:0:0]
	for _, it := range items {
		if !exclude.Has(it) {
			out = append(out, it)
		}
	}
	return out
}
