package dto

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// FormatDate renders a date for transport.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr renders an optional date, empty when absent.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a wire-format date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDatePtr parses an optional wire-format date.
func ParseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
