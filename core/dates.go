package core

import (
	"regexp"
	"time"
)

// DatetimeLayout is the layout the server uses for $createdAt, $updatedAt and
// datetime attributes, e.g. 2024-01-15T10:30:00.000+00:00.
const DatetimeLayout = "2006-01-02T15:04:05.000-07:00"

// ISO date pattern matches: 2024-01-15, 2024-01-15T10:30:00, 2024-01-15T10:30:00.000+00:00, etc.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{1,6})?(Z|[+-]\d{2}:?\d{2})?)?$`)

// IsISODateString checks if a string looks like an ISO 8601 date.
func IsISODateString(value string) bool {
	return isoDatePattern.MatchString(value)
}

// ParseISODate parses an ISO 8601 date string to time.Time.
func ParseISODate(value string) (time.Time, error) {
	formats := []string{
		DatetimeLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{Value: value, Message: "not a valid ISO 8601 date"}
}

// FormatDatetime formats t the way the server expects datetime parameters.
func FormatDatetime(t time.Time) string {
	return t.Format(DatetimeLayout)
}
