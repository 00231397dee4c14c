package quotefeed

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDateOfIgnoresTimezone(t *testing.T) {
	// The same instant seen from two zones is still the same calendar day
	// once truncated in UTC.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	instant := time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC)
	if got, want := DateOf(instant.In(ny)), NewDate(2025, time.March, 3); got != want {
		t.Errorf("DateOf(%v) = %s, want %s", instant, got, want)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"not-a-date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestDateAddRollsOver(t *testing.T) {
	if got, want := NewDate(2025, time.January, 31).Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
	if got, want := NewDate(2024, time.February, 28).Add(1), NewDate(2024, time.February, 29); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestDateUnixIsMidnightUTC(t *testing.T) {
	d := NewDate(2025, time.June, 2)
	if got := time.Unix(d.Unix(), 0).UTC(); got.Hour() != 0 || got.Day() != 2 {
		t.Errorf("Unix() maps back to %v, want midnight on the same day", got)
	}
}

func TestDateYAML(t *testing.T) {
	var cfg Configuration
	if err := yaml.Unmarshal([]byte("tickers: [AAPL]\nstart_date: 2025-1-2\nend_date: \"2025-03-04\"\n"), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.StartDate != NewDate(2025, time.January, 2) {
		t.Errorf("start_date = %s, want 2025-01-02", cfg.StartDate)
	}
	if cfg.EndDate != NewDate(2025, time.March, 4) {
		t.Errorf("end_date = %s, want 2025-03-04", cfg.EndDate)
	}
}
