// Package jsontime provides a timestamp type that serializes as ISO-8601
// local date-time without a timezone suffix, the wire format used for
// booking windows, comment timestamps and request timestamps.
package jsontime

import (
	"fmt"
	"time"
)

// Layout is the wire format: ISO-8601 date-time, no zone.
const Layout = "2006-01-02T15:04:05"

// LocalDateTime wraps time.Time with zoneless JSON encoding.
type LocalDateTime struct {
	time.Time
}

// New truncates t to second precision, matching the wire format.
func New(t time.Time) LocalDateTime {
	return LocalDateTime{t.Truncate(time.Second)}
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date-time %s", s)
	}
	parsed, err := time.Parse(Layout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date-time %s: %w", s, err)
	}
	t.Time = parsed
	return nil
}
