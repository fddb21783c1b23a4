package pkg

import (
	"testing"
	"time"
)

func TestContestDuration(t *testing.T) {
	parse := func(s string) time.Time {
		ts, err := time.Parse("2006-01-02T15:04", s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return ts
	}

	tests := []struct {
		name   string
		start  string
		end    string
		want   string
		wantOK bool
	}{
		{"days hours minutes", "2024-01-01T00:00", "2024-01-03T02:30", "2d 2h 30m", true},
		{"hours only", "2024-01-01T09:00", "2024-01-01T12:00", "3h", true},
		{"minutes only", "2024-01-01T09:00", "2024-01-01T09:45", "45m", true},
		{"days and minutes, zero hours", "2024-01-01T09:00", "2024-01-03T09:15", "2d 15m", true},
		{"sub-minute rounds down to 0m", "2024-01-01T09:00", "2024-01-01T09:00", "", false},
		{"end before start", "2024-01-02T00:00", "2024-01-01T00:00", "", false},
		{"exactly one week", "2024-01-01T00:00", "2024-01-08T00:00", "7d", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ContestDuration(parse(tt.start), parse(tt.end))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("duration = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContestDurationSubMinute(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Second)
	got, ok := ContestDuration(start, end)
	if !ok {
		t.Fatal("positive diff should be valid")
	}
	if got != "0m" {
		t.Errorf("duration = %q, want %q", got, "0m")
	}
}
