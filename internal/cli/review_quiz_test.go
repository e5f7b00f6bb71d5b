package cli

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/k-yamanaka/studycards/internal/collection"
	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
	mock_collection "github.com/k-yamanaka/studycards/internal/mocks/collection"
	mock_ledger "github.com/k-yamanaka/studycards/internal/mocks/ledger"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{
			name:   "Trims the trailing newline",
			answer: "went\n",
			want:   "went",
		},
		{
			name:   "Ignores case and repeated spaces",
			answer: "  To   Move  Quickly \n",
			want:   "to move quickly",
		},
		{
			name:   "Empty input",
			answer: "\n",
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeAnswer(tc.answer))
		})
	}
}

func newQuizCLI(t *testing.T, input string, wantCorrect bool) (*ReviewQuizCLI, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	collections := mock_collection.NewMockCollectionRepository(ctrl)
	progressRepo := mock_ledger.NewMockProgressRepository(ctrl)

	collectionID := "verbs"
	collections.EXPECT().ListCards(ctx, collectionID).Return([]collection.Card{
		{ID: 1, Position: 0, Front: "go", Back: "went"},
	}, nil)
	progressRepo.EXPECT().ListOverdue(ctx, collectionID, gomock.Any()).Return(nil, nil)
	progressRepo.EXPECT().List(ctx, collectionID).Return(nil, nil)
	progressRepo.EXPECT().Get(ctx, collectionID, int64(0)).Return(mastery.NewItem(), nil)
	progressRepo.EXPECT().PutDirty(ctx, collectionID, int64(0), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, item mastery.Item) error {
			if wantCorrect {
				assert.Equal(t, 1, item.Score)
				assert.Equal(t, 1, item.Streak)
			} else {
				assert.Equal(t, 0, item.Score)
				assert.Equal(t, 0, item.Streak)
				assert.Equal(t, 1.0, item.IntervalDays)
			}
			return nil
		})

	var out bytes.Buffer
	quiz, err := NewReviewQuizCLI(ctx, collections, progressRepo, collectionID, 10,
		rand.New(rand.NewSource(1)), strings.NewReader(input), &out)
	require.NoError(t, err)
	return quiz, &out
}

func TestReviewQuizCLI_Session(t *testing.T) {
	ctx := context.Background()

	t.Run("correct answer advances mastery", func(t *testing.T) {
		quiz, out := newQuizCLI(t, "went\n", true)
		require.Equal(t, 1, quiz.CardCount())

		require.NoError(t, quiz.Session(ctx))
		assert.Contains(t, out.String(), "Correct!")
		assert.Equal(t, 0, quiz.CardCount())

		err := quiz.Session(ctx)
		require.True(t, errors.Is(err, errEnd))
		assert.Contains(t, out.String(), "Session finished: 1/1 correct.")
	})

	t.Run("wrong answer reveals the back of the card", func(t *testing.T) {
		quiz, out := newQuizCLI(t, "goed\n", false)

		require.NoError(t, quiz.Session(ctx))
		assert.Contains(t, out.String(), "Wrong.")
		assert.Contains(t, out.String(), "went")
	})
}

func TestNewReviewQuizCLI(t *testing.T) {
	ctx := context.Background()

	t.Run("fails on an empty collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		collections := mock_collection.NewMockCollectionRepository(ctrl)
		progressRepo := mock_ledger.NewMockProgressRepository(ctrl)

		collections.EXPECT().ListCards(ctx, "empty").Return(nil, nil)

		_, err := NewReviewQuizCLI(ctx, collections, progressRepo, "empty", 10,
			rand.New(rand.NewSource(1)), strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no cards")
	})

	t.Run("reports the decay pass and skips cards that are not due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		collections := mock_collection.NewMockCollectionRepository(ctrl)
		progressRepo := mock_ledger.NewMockProgressRepository(ctrl)

		collectionID := "verbs"
		today := mastery.Today()
		notDue := mastery.Item{Score: 6, IntervalDays: 60, Due: today.AddDays(30)}
		overdue := mastery.Item{Score: 4, IntervalDays: 14, Due: today.AddDays(-40)}

		collections.EXPECT().ListCards(ctx, collectionID).Return([]collection.Card{
			{ID: 1, Position: 0, Front: "go", Back: "went"},
			{ID: 2, Position: 1, Front: "eat", Back: "ate"},
		}, nil)
		progressRepo.EXPECT().ListOverdue(ctx, collectionID, gomock.Any()).Return([]ledger.ProgressRecord{
			ledger.NewRecord(collectionID, 1, overdue),
		}, nil)
		progressRepo.EXPECT().Put(ctx, collectionID, int64(1), gomock.Any()).Return(nil)
		progressRepo.EXPECT().List(ctx, collectionID).Return([]ledger.ProgressRecord{
			ledger.NewRecord(collectionID, 0, notDue),
			ledger.NewRecord(collectionID, 1, overdue),
		}, nil)

		var out bytes.Buffer
		quiz, err := NewReviewQuizCLI(ctx, collections, progressRepo, collectionID, 10,
			rand.New(rand.NewSource(1)), strings.NewReader(""), &out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "1 overdue cards lost a little mastery")
		// Only the overdue card is queued; the one due in 30 days is not.
		require.Equal(t, 1, quiz.CardCount())
	})
}
