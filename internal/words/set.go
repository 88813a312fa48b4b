package words

import (
	"slices"
	"strings"
)

// Set is an unordered collection of lowercase words.
type Set map[string]struct{}

// NewSet builds a set from the lowercased, trimmed form of each item.
// Empty items are skipped.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts the key form of w. It reports whether the set grew.
func (s Set) Add(w string) bool {
	k := Key(w)
	if k == "" {
		return false
	}
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Has reports whether the key form of w is present.
func (s Set) Has(w string) bool {
	_, ok := s[Key(w)]
	return ok
}

// Remove deletes the key form of w. It reports whether anything was removed.
func (s Set) Remove(w string) bool {
	k := Key(w)
	if _, ok := s[k]; !ok {
		return false
	}
	delete(s, k)
	return true
}

// Sorted returns the members sorted case-insensitively.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	SortFold(out)
	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Key is the canonical identity of a word: trimmed and lowercased.
func Key(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// SortFold sorts in place by lowercase form, falling back to the raw
// string so the order is total.
func SortFold(items []string) {
	slices.SortStableFunc(items, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// UniqueFold removes case-insensitive duplicates, keeping the first
// occurrence of each word.
func UniqueFold(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := strings.ToLower(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// without returns items minus every entry whose key equals k.
func without(items []string, k string) []string {
	out := items[:0:0]
	for _, it := range items {
		if Key(it) != k {
			out = append(out, it)
		}
	}
	return out
}

func containsKey(items []string, k string) bool {
	for _, it := range items {
		if Key(it) == k {
			return true
		}
	}
	return false
}
