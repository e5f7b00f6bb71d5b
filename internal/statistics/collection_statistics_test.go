package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
	mock_ledger "github.com/k-yamanaka/studycards/internal/mocks/ledger"
)

func date(year int, month time.Month, day int) mastery.Date {
	return mastery.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestCalculate(t *testing.T) {
	today := date(2024, time.June, 15)

	record := func(index int64, item mastery.Item) ledger.ProgressRecord {
		return ledger.NewRecord("verbs", index, item)
	}

	tests := []struct {
		name    string
		records []ledger.ProgressRecord

		want CollectionStatistics
	}{
		{
			name: "Empty collection",
			want: CollectionStatistics{CollectionID: "verbs"},
		},
		{
			name: "Mixed schedule states",
			records: []ledger.ProgressRecord{
				// Never reviewed: due now, not overdue.
				record(1, mastery.NewItem()),
				// Overdue since June 10.
				record(2, mastery.Item{Score: 4, IntervalDays: 14, Due: date(2024, time.June, 10)}),
				// Due today.
				record(3, mastery.Item{Score: 6, IntervalDays: 60, Due: today}),
				// Not yet due.
				record(4, mastery.Item{Score: 8, IntervalDays: 240, Due: date(2024, time.July, 1)}),
				// Mastered.
				record(5, mastery.Item{
					Score:        mastery.MaxScore,
					IntervalDays: 365,
					Due:          date(2025, time.January, 1),
					CorrectDays:  mastery.MasteredCorrectDays,
				}),
			},
			want: CollectionStatistics{
				CollectionID: "verbs",
				Total:        5,
				DueToday:     3,
				Overdue:      1,
				Mastered:     1,
				AverageScore: 5.6,
				ScoreCounts: func() [mastery.MaxScore + 1]int {
					var counts [mastery.MaxScore + 1]int
					counts[0] = 1
					counts[4] = 1
					counts[6] = 1
					counts[8] = 1
					counts[10] = 1
					return counts
				}(),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate("verbs", tc.records, today)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_ForCollection(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.June, 15)

	ctrl := gomock.NewController(t)
	repo := mock_ledger.NewMockProgressRepository(ctrl)
	repo.EXPECT().List(ctx, "verbs").Return([]ledger.ProgressRecord{
		ledger.NewRecord("verbs", 1, mastery.Item{Score: 2, IntervalDays: 3, Due: date(2024, time.June, 20)}),
	}, nil)

	got, err := NewService(repo).ForCollection(ctx, "verbs", today)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 0, got.DueToday)
	assert.Equal(t, 2.0, got.AverageScore)
}
