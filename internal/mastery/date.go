package mastery

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Date represents a calendar date without a time of day, in YYYY-MM-DD format
// for YAML serialization. The zero value means "no date".
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time, dropping the time of day.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses a YYYY-MM-DD string. It falls back to RFC3339 for data
// written by older versions that stored full timestamps.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err == nil {
		return NewDate(t), nil
	}

	t, err = time.Parse(time.RFC3339, value)
	if err == nil {
		return NewDate(t), nil
	}

	return Date{}, fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD or RFC3339 format", value)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time.AddDate(0, 0, n))
}

// SameDay reports whether both dates fall on the same calendar day.
// A zero date never matches a non-zero date.
func (d Date) SameDay(other Date) bool {
	if d.IsZero() || other.IsZero() {
		return d.IsZero() && other.IsZero()
	}
	return d.Time.Equal(other.Time)
}

// DaysUntil returns the number of whole days from d to other.
// The result is negative when other is earlier than d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// MarshalYAML implements the yaml.Marshaler interface
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format("2006-01-02"), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
