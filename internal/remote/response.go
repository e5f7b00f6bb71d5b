package remote

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/k-yamanaka/studycards/internal/mastery"
	"github.com/k-yamanaka/studycards/internal/syncer"
)

type progressPayload struct {
	Items []progressItem `json:"items"`
}

type progressItem struct {
	Index       int64        `json:"index"`
	Score       int          `json:"score"`
	Streak      int          `json:"streak,omitempty"`
	CorrectDays int          `json:"correct_days,omitempty"`
	ReviewedOn  string       `json:"reviewed_on,omitempty"`
	Correct     *CorrectMark `json:"correct,omitempty"`
}

// CorrectMark reports whether the item's last recorded answer was correct.
// Older clients sent the field as a string, newer ones as a JSON boolean.
// Decoding attempts the boolean first, then falls back to the string form,
// and rejects anything else.
type CorrectMark struct {
	Value bool
	Raw   string // original string form, empty when sent as a boolean
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (m *CorrectMark) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		m.Value = b
		m.Raw = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Raw = s
		m.Value = strings.EqualFold(s, "true") || strings.EqualFold(s, "yes") || s == "1"
		return nil
	}

	return fmt.Errorf("correct flag is neither a boolean nor a string: %s", string(data))
}

// MarshalJSON implements the json.Marshaler interface
func (m CorrectMark) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Value)
}

func toWire(item syncer.ItemProgress) progressItem {
	wire := progressItem{
		Index:       item.Index,
		Score:       item.Score,
		Streak:      item.Streak,
		CorrectDays: item.CorrectDays,
		Correct:     &CorrectMark{Value: item.Streak > 0},
	}
	if !item.ReviewedOn.IsZero() {
		wire.ReviewedOn = item.ReviewedOn.Format("2006-01-02")
	}
	return wire
}

// toItemProgress converts a wire item, defaulting an unparseable reviewed-on
// date to "never", which leaves the item due immediately.
func (p progressItem) toItemProgress() syncer.ItemProgress {
	reviewedOn := mastery.Date{}
	if p.ReviewedOn != "" {
		parsed, err := mastery.ParseDate(p.ReviewedOn)
		if err != nil {
			slog.Default().Warn("ignoring unparseable reviewed_on date",
				"index", p.Index,
				"value", p.ReviewedOn)
		} else {
			reviewedOn = parsed
		}
	}

	return syncer.ItemProgress{
		Index:       p.Index,
		Score:       p.Score,
		Streak:      p.Streak,
		CorrectDays: p.CorrectDays,
		ReviewedOn:  reviewedOn,
	}
}
