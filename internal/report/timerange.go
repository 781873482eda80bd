package report

import "time"

// TimeRange is an optional inclusive [From, To] window. A nil bound does not
// constrain that side.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDate parses an ISO timestamp or plain date. Invalid or empty input is
// treated as an absent bound.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}

// NewTimeRange builds a range from raw query values.
func NewTimeRange(from, to string) TimeRange {
	return TimeRange{
		From: ParseDate(from),
		To:   ParseDate(to),
	}
}

// Contains reports whether t falls inside the range. Boundary-equal
// timestamps are included.
func (tr TimeRange) Contains(t time.Time) bool {
	if tr.From != nil && t.Before(*tr.From) {
		return false
	}
	if tr.To != nil && t.After(*tr.To) {
		return false
	}
	return true
}
