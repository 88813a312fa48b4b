package selection

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/wordz/internal/words"
)

// ReviewFilter narrows the review pool. Empty bounds are open.
type ReviewFilter struct {
	From               string
	To                 string
	OnlyTongueTwisters bool
}

// ReviewPool is the set of learned words and expressions being reviewed.
// Draws are with replacement.
type ReviewPool struct {
	rng   *rand.Rand
	items []string

	// From and To are the parsed bounds; zero when absent or unparsable.
	From time.Time
	To   time.Time
}

var dateLayouts = []string{"2006-1-2", "2/1/2006", "2.1.2006"}

var shortDateLayouts = []string{"2/1", "2.1"}

// ParseDate reads a user-entered date. Day/month forms without a year
// take the year of today.
func ParseDate(s string, today time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	for _, layout := range shortDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// NewReviewPool collects the learned words followed by the expressions
// and applies f. With a date bound set, entries without a parsable
// learned date are left out. A nil rng uses a randomly seeded source.
func NewReviewPool(m *words.Model, f ReviewFilter, today time.Time, rng *rand.Rand) *ReviewPool {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &ReviewPool{rng: rng}
	from, hasFrom := ParseDate(f.From, today)
	to, hasTo := ParseDate(f.To, today)
	if hasFrom {
		p.From = from
	}
	if hasTo {
		p.To = to
	}

	all := make([]string, 0, len(m.LearnedSession)+len(m.Expressions))
	all = append(all, m.LearnedSession...)
	all = append(all, m.Expressions...)
	for _, w := range all {
		k := words.Key(w)
		if hasFrom || hasTo {
			d, err := time.Parse(words.DateLayout, strings.TrimSpace(m.LearnedLog[k]))
			if err != nil {
				continue
			}
			if hasFrom && d.Before(from) {
				continue
			}
			if hasTo && d.After(to) {
				continue
			}
		}
		if f.OnlyTongueTwisters && !m.TongueTwisters.Has(k) {
			continue
		}
		p.items = append(p.items, w)
	}
	return p
}

// Len returns the pool size.
func (p *ReviewPool) Len() int { return len(p.items) }

// Items returns the pool members in pool order.
func (p *ReviewPool) Items() []string { return p.items }

// Draw returns a uniformly random member.
func (p *ReviewPool) Draw() (string, bool) {
	if len(p.items) == 0 {
		return "", false
	}
	return p.items[p.rng.IntN(len(p.items))], true
}
