package words

import (
	"slices"
	"strings"
)

// KnownList returns the known words most recently classified first.
func (m *Model) KnownList() []string {
	return m.classifiedList(m.KnownSeq, m.Known, nil)
}

// NewList returns the new words most recently classified first. Words
// that are also known are left out.
func (m *Model) NewList() []string {
	return m.classifiedList(m.NewSeq, m.New, m.Known)
}

// RemovedList returns the removed words in sorted order.
func (m *Model) RemovedList() []string {
	return m.Removed.Sorted()
}

// UserList returns the words added by the user in sorted order.
func (m *Model) UserList() []string {
	out := make([]string, 0, len(m.User))
	for _, w := range m.User.Sorted() {
		if !m.Removed.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

func (m *Model) classifiedList(seq []string, set, exclude Set) []string {
	out := make([]string, 0, len(set))
	seen := Set{}
	keep := func(w string) {
		k := Key(w)
		if !set.Has(k) || exclude.Has(k) || m.Removed.Has(k) || !seen.Add(k) {
			return
		}
		out = append(out, k)
	}
	for _, w := range seq {
		keep(w)
	}
	for _, w := range set.Sorted() {
		keep(w)
	}
	slices.Reverse(out)
	return out
}

// Search keeps the items containing query, case-insensitively. An empty
// query keeps everything.
func Search(items []string, query string) []string {
	q := Key(query)
	if q == "" {
		return items
	}
	var out []string
	for _, w := range items {
		if strings.Contains(strings.ToLower(w), q) {
			out = append(out, w)
		}
	}
	return out
}
