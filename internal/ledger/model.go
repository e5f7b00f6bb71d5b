package ledger

import (
	"time"

	"github.com/k-yamanaka/studycards/internal/mastery"
)

// ProgressRecord is one persisted ledger row, keyed by (collection, item index).
type ProgressRecord struct {
	CollectionID  string     `db:"collection_id"`
	ItemIndex     int64      `db:"item_index"`
	Score         int        `db:"score"`
	IntervalDays  float64    `db:"interval_days"`
	DueOn         *time.Time `db:"due_on"`
	Streak        int        `db:"streak"`
	CorrectDays   int        `db:"correct_days"`
	LastCorrectOn *time.Time `db:"last_correct_on"`
	DecayedOn     *time.Time `db:"decayed_on"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// Item converts the stored row into the mastery model's value type.
func (r ProgressRecord) Item() mastery.Item {
	return mastery.Item{
		Score:         r.Score,
		IntervalDays:  r.IntervalDays,
		Due:           dateOf(r.DueOn),
		Streak:        r.Streak,
		CorrectDays:   r.CorrectDays,
		LastCorrectOn: dateOf(r.LastCorrectOn),
		DecayedOn:     dateOf(r.DecayedOn),
	}
}

// NewRecord builds a row from a mastery item.
func NewRecord(collectionID string, itemIndex int64, item mastery.Item) ProgressRecord {
	return ProgressRecord{
		CollectionID:  collectionID,
		ItemIndex:     itemIndex,
		Score:         item.Score,
		IntervalDays:  item.IntervalDays,
		DueOn:         timeOf(item.Due),
		Streak:        item.Streak,
		CorrectDays:   item.CorrectDays,
		LastCorrectOn: timeOf(item.LastCorrectOn),
		DecayedOn:     timeOf(item.DecayedOn),
	}
}

func dateOf(t *time.Time) mastery.Date {
	if t == nil {
		return mastery.Date{}
	}
	return mastery.NewDate(*t)
}

func timeOf(d mastery.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
