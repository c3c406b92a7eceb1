package domain_test

import (
	"testing"
	"time"

	"studya/internal/modules/session/domain"
)

func TestElapsedMinutesRoundsEachTerm(t *testing.T) {
	t.Parallel()
	start := at(0)
	cases := []struct {
		name        string
		end         time.Time
		pauseStart  time.Time
		accumulated time.Duration
		want        int
	}{
		{name: "plain", end: at(30), want: 30},
		{name: "accumulated pause subtracted", end: at(30), accumulated: 3 * time.Minute, want: 27},
		{name: "open pause subtracted", end: at(30), pauseStart: at(20), want: 20},
		{name: "open plus accumulated", end: at(30), pauseStart: at(25), accumulated: 10 * time.Minute, want: 15},
		{name: "sub-minute rounds", end: start.Add(90 * time.Second), want: 2},
		{name: "rounds down below half", end: start.Add(80 * time.Second), want: 1},
		{name: "end before start clamps", end: at(-5), want: 0},
		{name: "pause exceeds elapsed clamps", end: at(10), accumulated: time.Hour, want: 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := domain.ElapsedMinutes(start, tc.end, tc.pauseStart, tc.accumulated)
			if got != tc.want {
				t.Fatalf("expected %d minutes, got %d", tc.want, got)
			}
		})
	}
}

func TestElapsedIsIdempotent(t *testing.T) {
	t.Parallel()
	start := at(0)
	end := at(45)
	first := domain.Elapsed(start, end, time.Time{}, 5*time.Minute)
	second := domain.Elapsed(start, end, time.Time{}, 5*time.Minute)
	if first != second || first != 40*time.Minute {
		t.Fatalf("elapsed must be a pure function: %v vs %v", first, second)
	}
}
