package scheduling

import (
	"testing"
	"time"
)

func TestWindowBounds(t *testing.T) {
	start := time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)
	from, to := Window(start, 60)

	wantFrom := time.Date(2024, 1, 20, 13, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) {
		t.Errorf("from = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantTo) {
		t.Errorf("to = %v, want %v", to, wantTo)
	}
}

func TestInWindow(t *testing.T) {
	booked := time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		request  time.Time
		duration int
		conflict bool
	}{
		{"same slot", booked, 60, true},
		{"thirty minutes later", booked.Add(30 * time.Minute), 60, true},
		{"thirty minutes earlier", booked.Add(-30 * time.Minute), 60, true},
		{"exactly one duration later", booked.Add(60 * time.Minute), 60, true},
		{"well clear after", booked.Add(150 * time.Minute), 60, false},
		{"well clear before", booked.Add(-150 * time.Minute), 60, false},
		{"short duration close by", booked.Add(20 * time.Minute), 15, true},
		{"short duration clear", booked.Add(-20 * time.Minute), 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := Window(tt.request, tt.duration)
			if got := InWindow(booked, from, to); got != tt.conflict {
				t.Errorf("InWindow(%v in ±%dm of %v) = %v, want %v",
					booked, tt.duration, tt.request, got, tt.conflict)
			}
		})
	}
}

// Mirrors the booking scenario: an approved appointment at 14:00 for 60
// minutes blocks a 14:30 request but not a 16:30 one.
func TestStaggeredBookings(t *testing.T) {
	booked := time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)

	from, to := Window(time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC), 60)
	if !InWindow(booked, from, to) {
		t.Error("expected 14:30 request to conflict with 14:00 booking")
	}

	from, to = Window(time.Date(2024, 1, 20, 16, 30, 0, 0, time.UTC), 60)
	if InWindow(booked, from, to) {
		t.Error("expected 16:30 request to be clear of 14:00 booking")
	}
}
