// Package review provides review-session logic: picking which items to
// present and recording answers against the progress ledger.
package review

import (
	"math/rand"
	"sort"
	"time"

	"github.com/k-yamanaka/studycards/internal/mastery"
)

// Candidate pairs an item key with its mastery state for selection.
type Candidate struct {
	Key  int64
	Item mastery.Item
}

// SelectForReview picks up to n candidates, biased toward low mastery and
// early due dates. Candidates are ranked by (score asc, due asc) and drawn
// without replacement with linearly decreasing weight, so weak items lead
// but the order varies between sessions. A nil rng falls back to a
// time-seeded source; tests pass a fixed seed for determinism.
func SelectForReview(pool []Candidate, n int, rng *rand.Rand) []Candidate {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ranked := make([]Candidate, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Item.Score != b.Item.Score {
			return a.Item.Score < b.Item.Score
		}
		if !a.Item.Due.SameDay(b.Item.Due) {
			// A zero due date means due now and sorts first.
			if a.Item.Due.IsZero() || b.Item.Due.IsZero() {
				return a.Item.Due.IsZero()
			}
			return a.Item.Due.Before(b.Item.Due.Time)
		}
		return a.Key < b.Key
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	selected := make([]Candidate, 0, n)
	for len(selected) < n {
		idx := drawWeighted(len(ranked), rng)
		selected = append(selected, ranked[idx])
		ranked = append(ranked[:idx], ranked[idx+1:]...)
	}
	return selected
}

// drawWeighted picks an index in [0, size) where position i carries weight
// size-i, preferring the front of the ranking.
func drawWeighted(size int, rng *rand.Rand) int {
	total := size * (size + 1) / 2
	r := rng.Intn(total)
	for i := 0; i < size; i++ {
		r -= size - i
		if r < 0 {
			return i
		}
	}
	return size - 1
}
