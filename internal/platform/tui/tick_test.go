package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"default", 60, time.Second / 60},
		{"slow", 10, 100 * time.Millisecond},
		{"zero uses default", 0, time.Second / 60},
		{"negative uses default", -5, time.Second / 60},
		{"capped", 1000, time.Second / 240},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tickInterval(tc.rate); got != tc.expected {
				t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
			}
		})
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(60) == nil {
		t.Fatal("tickCmd returned nil")
	}
}
