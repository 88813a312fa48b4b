package selection

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/wordz/internal/words"
)

// LearnCandidates returns the new words oldest first: the new sequence,
// then any new word the sequence is missing.
func LearnCandidates(m *words.Model) []string {
	var out []string
	seen := words.Set{}
	for _, w := range m.NewSeq {
		if m.New.Has(w) && !m.Removed.Has(w) && seen.Add(w) {
			out = append(out, words.Key(w))
		}
	}
	for _, w := range m.New.Sorted() {
		if !m.Removed.Has(w) && seen.Add(w) {
			out = append(out, w)
		}
	}
	return out
}

// OrderedCandidates applies order to LearnCandidates. Random keeps the
// oldest-first order; the pick itself is random.
func OrderedCandidates(m *words.Model, order words.LearnOrder) []string {
	c := LearnCandidates(m)
	if order == words.OrderNewest {
		slices.Reverse(c)
	}
	return c
}

// LearnPicker walks the new words in learn mode.
type LearnPicker struct {
	rng     *rand.Rand
	idx     int
	current string
	history []string
}

// NewLearnPicker returns a picker. A nil rng uses a randomly seeded source.
func NewLearnPicker(rng *rand.Rand) *LearnPicker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LearnPicker{rng: rng}
}

// Current returns the word on screen, or "".
func (p *LearnPicker) Current() string { return p.current }

// Reset restarts the rotation, e.g. after the order changes.
func (p *LearnPicker) Reset() { p.idx = 0 }

// Next advances to another candidate. In Oldest and Newest order it
// cycles through the candidates; in Random order it picks uniformly but
// never repeats the previous word while another candidate exists.
func (p *LearnPicker) Next(m *words.Model) (string, bool) {
	prev := p.current
	if prev != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != prev) {
		p.history = append(p.history, prev)
	}

	cands := OrderedCandidates(m, m.LearnOrder)
	if len(cands) == 0 {
		p.current = ""
		return "", false
	}

	var w string
	if m.LearnOrder == words.OrderRandom || m.LearnOrder == "" {
		pool := cands
		if len(cands) > 1 && slices.Contains(cands, prev) {
			pool = slices.DeleteFunc(slices.Clone(cands), func(c string) bool { return c == prev })
		}
		w = pool[p.rng.IntN(len(pool))]
	} else {
		w = cands[p.idx%len(cands)]
		p.idx = (p.idx + 1) % len(cands)
	}
	p.current = w
	return w, true
}

// Previous steps back to the last word shown before the current one.
func (p *LearnPicker) Previous() (string, bool) {
	if len(p.history) == 0 {
		return "", false
	}
	w := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.current = w
	return w, true
}
