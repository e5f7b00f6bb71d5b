package mastery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) Date {
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestIntervalForScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{name: "score 0", score: 0, want: 1},
		{name: "score 1", score: 1, want: 1},
		{name: "score 2", score: 2, want: 3},
		{name: "score 3", score: 3, want: 7},
		{name: "score 4", score: 4, want: 14},
		{name: "score 5", score: 5, want: 30},
		{name: "score 6 doubles the last step", score: 6, want: 60},
		{name: "score 7 doubles again", score: 7, want: 120},
		{name: "score 8 doubles again", score: 8, want: 240},
		{name: "score 9 hits the ceiling", score: 9, want: 365},
		{name: "score 10 stays at the ceiling", score: 10, want: 365},
		{name: "negative score is clamped", score: -1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalForScore(tt.score))
		})
	}
}

func TestApplyCorrectAnswer(t *testing.T) {
	today := date(2024, time.January, 12)

	tests := []struct {
		name string
		item Item
		want Item
	}{
		{
			name: "never reviewed item",
			item: NewItem(),
			want: Item{
				Score:         1,
				IntervalDays:  1,
				Due:           date(2024, time.January, 13),
				Streak:        1,
				CorrectDays:   1,
				LastCorrectOn: today,
			},
		},
		{
			name: "score 2 item answered past its due date",
			item: Item{
				Score:        2,
				IntervalDays: 3,
				Due:          date(2024, time.January, 10),
				Streak:       4,
				CorrectDays:  3,
			},
			want: Item{
				Score:         3,
				IntervalDays:  7,
				Due:           date(2024, time.January, 19),
				Streak:        5,
				CorrectDays:   4,
				LastCorrectOn: today,
			},
		},
		{
			name: "score stays capped at the maximum",
			item: Item{
				Score:         MaxScore,
				IntervalDays:  365,
				Due:           date(2024, time.January, 12),
				Streak:        20,
				CorrectDays:   15,
				LastCorrectOn: date(2024, time.January, 11),
			},
			want: Item{
				Score:         MaxScore,
				IntervalDays:  365,
				Due:           date(2025, time.January, 11),
				Streak:        21,
				CorrectDays:   16,
				LastCorrectOn: today,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.item
			got := ApplyCorrectAnswer(tt.item, today)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, original, tt.item, "input must not be mutated")
		})
	}
}

func TestApplyCorrectAnswer_SameDayDoesNotDoubleCountCorrectDays(t *testing.T) {
	today := date(2024, time.March, 5)

	first := ApplyCorrectAnswer(NewItem(), today)
	second := ApplyCorrectAnswer(first, today)

	assert.Equal(t, first.Score+1, second.Score)
	assert.Equal(t, first.Streak+1, second.Streak)
	assert.Equal(t, first.CorrectDays, second.CorrectDays, "same-day repeat must not add a correct day")

	// A later day earns the credit again.
	tomorrow := today.AddDays(1)
	third := ApplyCorrectAnswer(second, tomorrow)
	assert.Equal(t, second.CorrectDays+1, third.CorrectDays)
}

func TestApplyWrongAnswer(t *testing.T) {
	today := date(2024, time.January, 12)

	tests := []struct {
		name string
		item Item
		want Item
	}{
		{
			name: "learned item loses one step and resets",
			item: Item{
				Score:         5,
				IntervalDays:  30,
				Due:           date(2024, time.January, 12),
				Streak:        7,
				CorrectDays:   6,
				LastCorrectOn: date(2024, time.January, 10),
			},
			want: Item{
				Score:         4,
				IntervalDays:  1,
				Due:           date(2024, time.January, 13),
				Streak:        0,
				CorrectDays:   6,
				LastCorrectOn: date(2024, time.January, 10),
			},
		},
		{
			name: "score stays floored at the minimum",
			item: NewItem(),
			want: Item{
				Score:        0,
				IntervalDays: 1,
				Due:          date(2024, time.January, 13),
			},
		},
		{
			name: "same day correct credit is not rolled back",
			item: Item{
				Score:         3,
				IntervalDays:  7,
				Due:           date(2024, time.January, 19),
				Streak:        3,
				CorrectDays:   3,
				LastCorrectOn: today,
			},
			want: Item{
				Score:         2,
				IntervalDays:  1,
				Due:           date(2024, time.January, 13),
				Streak:        0,
				CorrectDays:   3,
				LastCorrectOn: today,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyWrongAnswer(tt.item, today)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got.Streak)
			assert.Equal(t, float64(1), got.IntervalDays)
		})
	}
}

func TestItem_IsDue(t *testing.T) {
	today := date(2024, time.June, 15)

	tests := []struct {
		name string
		item Item
		want bool
	}{
		{name: "zero due date is due now", item: NewItem(), want: true},
		{name: "due today", item: Item{Due: today}, want: true},
		{name: "due yesterday", item: Item{Due: date(2024, time.June, 14)}, want: true},
		{name: "due tomorrow", item: Item{Due: date(2024, time.June, 16)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsDue(today))
		})
	}
}

func TestItem_IsOverdue(t *testing.T) {
	today := date(2024, time.June, 15)

	tests := []struct {
		name string
		item Item
		want bool
	}{
		{name: "zero due date is not overdue", item: NewItem(), want: false},
		{name: "due today is not overdue", item: Item{Due: today}, want: false},
		{name: "due yesterday is overdue", item: Item{Due: date(2024, time.June, 14)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsOverdue(today))
		})
	}
}

func TestItem_Mastered(t *testing.T) {
	assert.False(t, Item{CorrectDays: MasteredCorrectDays - 1}.Mastered())
	assert.True(t, Item{CorrectDays: MasteredCorrectDays}.Mastered())
	assert.True(t, Item{CorrectDays: MasteredCorrectDays + 5}.Mastered())
}
