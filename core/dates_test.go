package core

import (
	"testing"
	"time"
)

func TestIsISODateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		// Date-only strings
		{"date only", "2024-01-15", true},
		{"date only end of year", "2024-12-31", true},

		// Date-time strings
		{"datetime without timezone", "2024-01-15T10:30:00", true},
		{"datetime with Z", "2024-01-15T10:30:00Z", true},
		{"datetime with milliseconds", "2024-01-15T10:30:00.000Z", true},
		{"datetime with 3 digit ms", "2024-01-15T10:30:00.123Z", true},
		{"server datetime", "2024-01-15T10:30:00.123+00:00", true},

		// Date-time with timezone offset
		{"datetime with +00:00", "2024-01-15T10:30:00+00:00", true},
		{"datetime with -05:00", "2024-01-15T10:30:00-05:00", true},
		{"datetime with +0530 no colon", "2024-01-15T10:30:00+0530", true},

		// Non-date strings
		{"plain text", "hello world", false},
		{"year only", "2024", false},
		{"year-month only", "2024-01", false},
		{"US date format", "01-15-2024", false},
		{"empty string", "", false},
		{"number string", "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsISODateString(tt.input)
			if result != tt.expected {
				t.Errorf("IsISODateString(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		checkYear   int
		checkMonth  time.Month
		checkDay    int
	}{
		{"date only", "2024-01-15", false, 2024, time.January, 15},
		{"datetime with Z", "2024-01-15T10:30:00Z", false, 2024, time.January, 15},
		{"datetime with milliseconds", "2024-01-15T10:30:00.000Z", false, 2024, time.January, 15},
		{"datetime RFC3339", "2024-03-20T14:45:00+00:00", false, 2024, time.March, 20},
		{"server datetime", "2024-06-02T08:00:00.000+02:00", false, 2024, time.June, 2},
		{"invalid date", "not-a-date", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseISODate(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseISODate(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseISODate(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.Year() != tt.checkYear {
				t.Errorf("ParseISODate(%q) year = %d, want %d", tt.input, result.Year(), tt.checkYear)
			}
			if result.Month() != tt.checkMonth {
				t.Errorf("ParseISODate(%q) month = %v, want %v", tt.input, result.Month(), tt.checkMonth)
			}
			if result.Day() != tt.checkDay {
				t.Errorf("ParseISODate(%q) day = %d, want %d", tt.input, result.Day(), tt.checkDay)
			}
		})
	}
}

func TestFormatDatetime(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, time.June, 2, 8, 0, 0, 120_000_000, loc)

	got := FormatDatetime(ts)
	want := "2024-06-02T08:00:00.120+02:00"
	if got != want {
		t.Errorf("FormatDatetime() = %q, want %q", got, want)
	}

	back, err := ParseISODate(got)
	if err != nil {
		t.Fatalf("ParseISODate(%q) unexpected error: %v", got, err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}
}
