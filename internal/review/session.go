package review

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
)

// Session coordinates one collection's review flow: due-item selection,
// answer recording, and the opportunistic decay pass. All ledger mutations
// for a collection are expected to go through one Session at a time.
type Session struct {
	progressRepo ledger.ProgressRepository
	collectionID string
	today        mastery.Date
}

// NewSession creates a Session for a collection as of the given date.
func NewSession(progressRepo ledger.ProgressRepository, collectionID string, today mastery.Date) *Session {
	return &Session{
		progressRepo: progressRepo,
		collectionID: collectionID,
		today:        today,
	}
}

// DueCandidates returns up to n due items, ordered by the selection policy.
func (s *Session) DueCandidates(ctx context.Context, n int, rng *rand.Rand) ([]Candidate, error) {
	records, err := s.progressRepo.List(ctx, s.collectionID)
	if err != nil {
		return nil, fmt.Errorf("progressRepo.List(%s) > %w", s.collectionID, err)
	}

	pool := make([]Candidate, 0, len(records))
	for _, record := range records {
		item := record.Item()
		if !item.IsDue(s.today) {
			continue
		}
		pool = append(pool, Candidate{Key: record.ItemIndex, Item: item})
	}

	return SelectForReview(pool, n, rng), nil
}

// RecordAnswer applies the answer transition and persists the full next state
// with a single dirty write. The returned item is the new state.
func (s *Session) RecordAnswer(ctx context.Context, itemKey int64, correct bool) (mastery.Item, error) {
	item, err := s.progressRepo.Get(ctx, s.collectionID, itemKey)
	if err != nil {
		return mastery.Item{}, fmt.Errorf("progressRepo.Get(%s, %d) > %w", s.collectionID, itemKey, err)
	}

	var next mastery.Item
	if correct {
		next = mastery.ApplyCorrectAnswer(item, s.today)
	} else {
		next = mastery.ApplyWrongAnswer(item, s.today)
	}

	if err := s.progressRepo.PutDirty(ctx, s.collectionID, itemKey, next); err != nil {
		return mastery.Item{}, fmt.Errorf("progressRepo.PutDirty(%s, %d) > %w", s.collectionID, itemKey, err)
	}
	return next, nil
}

// DecayOverdue penalizes every strictly overdue item once and returns how many
// items were penalized. Decay is a local re-estimate, not a reviewed answer,
// so it does not touch the pending-change set.
func (s *Session) DecayOverdue(ctx context.Context) (int, error) {
	records, err := s.progressRepo.ListOverdue(ctx, s.collectionID, s.today.Time)
	if err != nil {
		return 0, fmt.Errorf("progressRepo.ListOverdue(%s) > %w", s.collectionID, err)
	}

	decayed := 0
	for _, record := range records {
		item := record.Item()
		next := mastery.ApplyDecay(item, s.today)
		if next == item {
			continue
		}
		if err := s.progressRepo.Put(ctx, s.collectionID, record.ItemIndex, next); err != nil {
			return decayed, fmt.Errorf("progressRepo.Put(%s, %d) > %w", s.collectionID, record.ItemIndex, err)
		}
		decayed++
	}
	return decayed, nil
}
