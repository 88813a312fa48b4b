// Package selection decides which word comes next: the browse pool of
// unseen words, the learn-mode walk over new words and the review pool.
package selection

import (
	"math/rand/v2"
)

// Source is the view of the vocabulary the browse pool draws from.
type Source interface {
	Vocabulary() []string
	Eligible(w string) bool
}

// Pool holds the words that may still be drawn in browse mode. It is
// rebuilt lazily after MarkDirty, and each word is drawn at most once
// between rebuilds.
type Pool struct {
	rng   *rand.Rand
	items []string
	dirty bool
}

// NewPool returns a dirty pool. A nil rng uses a randomly seeded source.
func NewPool(rng *rand.Rand) *Pool {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pool{rng: rng, dirty: true}
}

// MarkDirty schedules a rebuild before the next draw.
func (p *Pool) MarkDirty() {
	p.dirty = true
}

// Draw removes and returns a uniformly random eligible word. It reports
// false when nothing is left.
func (p *Pool) Draw(src Source) (string, bool) {
	if p.dirty {
		p.rebuild(src)
	}
	n := len(p.items)
	if n == 0 {
		return "", false
	}
	i := p.rng.IntN(n)
	p.items[i], p.items[n-1] = p.items[n-1], p.items[i]
	w := p.items[n-1]
	p.items = p.items[:n-1]
	return w, true
}

// Len returns the number of words left, rebuilding first if needed.
func (p *Pool) Len(src Source) int {
	if p.dirty {
		p.rebuild(src)
	}
	return len(p.items)
}

func (p *Pool) rebuild(src Source) {
	p.items = p.items[:0]
	for _, w := range src.Vocabulary() {
		if src.Eligible(w) {
			p.items = append(p.items, w)
		}
	}
	p.dirty = false
}
