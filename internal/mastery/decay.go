package mastery

const (
	// decayStepDays is how many overdue days add one extra penalty step.
	decayStepDays = 30

	// maxDecaySteps caps the penalty of a single decay pass.
	maxDecaySteps = 3
)

// ApplyDecay penalizes an item left strictly overdue: at least one score step,
// plus one step per decayStepDays of elapsed overdue time. It never reschedules
// the item and is a no-op when the score is already at the floor, when the item
// is not overdue, or when the item was already decayed on the same calendar day.
func ApplyDecay(item Item, today Date) Item {
	if item.Score <= MinScore {
		return item
	}
	if !item.IsOverdue(today) {
		return item
	}
	if item.DecayedOn.SameDay(today) {
		return item
	}

	overdueDays := item.Due.DaysUntil(today)
	steps := 1 + overdueDays/decayStepDays
	if steps > maxDecaySteps {
		steps = maxDecaySteps
	}

	next := item
	next.Score -= steps
	if next.Score < MinScore {
		next.Score = MinScore
	}
	next.DecayedOn = today
	return next
}
