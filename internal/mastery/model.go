// Package mastery provides the per-item memory model: answer transitions,
// the review interval step table, and the overdue decay penalty.
package mastery

import "math"

const (
	// MinScore and MaxScore bound the canonical mastery score.
	MinScore = 0
	MaxScore = 10

	// MaxIntervalDays caps interval growth for high scores.
	MaxIntervalDays = 365

	// MasteredCorrectDays is how many distinct correct days classify an item
	// as mastered.
	MasteredCorrectDays = 10
)

// intervalSteps maps a score to its review interval in days.
// Scores beyond the table double the last step, capped at MaxIntervalDays.
var intervalSteps = []float64{1, 1, 3, 7, 14, 30}

// Item is one learnable item's memory state. Transitions return a new Item
// and never mutate their input.
type Item struct {
	Score         int
	IntervalDays  float64
	Due           Date
	Streak        int
	CorrectDays   int
	LastCorrectOn Date
	DecayedOn     Date
}

// NewItem returns the never-reviewed default state. The zero Due date means
// the item is due immediately.
func NewItem() Item {
	return Item{IntervalDays: 1}
}

// IntervalForScore returns the review interval in days for a score.
func IntervalForScore(score int) float64 {
	if score < MinScore {
		score = MinScore
	}
	if score < len(intervalSteps) {
		return intervalSteps[score]
	}

	interval := intervalSteps[len(intervalSteps)-1]
	for s := len(intervalSteps); s <= score; s++ {
		interval *= 2
		if interval >= MaxIntervalDays {
			return MaxIntervalDays
		}
	}
	return interval
}

// ApplyCorrectAnswer raises the score one step, extends the streak, and
// reschedules the item by the step table. CorrectDays only increments the
// first time a correct answer lands on a given calendar day.
func ApplyCorrectAnswer(item Item, today Date) Item {
	next := item
	if next.Score < MaxScore {
		next.Score++
	}
	next.Streak++
	if !item.LastCorrectOn.SameDay(today) {
		next.CorrectDays++
	}
	next.LastCorrectOn = today
	next.IntervalDays = IntervalForScore(next.Score)
	next.Due = today.AddDays(int(math.Round(next.IntervalDays)))
	return next
}

// ApplyWrongAnswer lowers the score one step, resets the streak and interval,
// and schedules the item for tomorrow. CorrectDays and LastCorrectOn are left
// untouched so a same-day credit is never rolled back.
func ApplyWrongAnswer(item Item, today Date) Item {
	next := item
	if next.Score > MinScore {
		next.Score--
	}
	next.Streak = 0
	next.IntervalDays = 1
	next.Due = today.AddDays(1)
	return next
}

// IsDue reports whether the item should be reviewed today. A zero Due date
// counts as due now, which is also the safe default for unparseable dates.
func (item Item) IsDue(today Date) bool {
	if item.Due.IsZero() {
		return true
	}
	return !item.Due.After(today.Time)
}

// IsOverdue reports whether the item's review date has strictly passed.
// A never-scheduled item is due but not overdue.
func (item Item) IsOverdue(today Date) bool {
	if item.Due.IsZero() {
		return false
	}
	return item.Due.Before(today.Time)
}

// Mastered reports whether the item has collected enough distinct correct days.
func (item Item) Mastered() bool {
	return item.CorrectDays >= MasteredCorrectDays
}
