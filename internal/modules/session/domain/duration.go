package domain

import (
	"math"
	"time"
)

// Elapsed computes the tracked duration between start and end, excluding the
// open pause (pauseStart, when set) and all accumulated pause time. Backward
// clock jumps clamp to zero rather than going negative.
func Elapsed(start, end time.Time, pauseStart time.Time, accumulated time.Duration) time.Duration {
	total := end.Sub(start)
	if !pauseStart.IsZero() {
		if open := end.Sub(pauseStart); open > 0 {
			total -= open
		}
	}
	total -= accumulated
	if total < 0 {
		return 0
	}
	return total
}

// ElapsedMinutes is the rounded-minute form of Elapsed. Each term is rounded
// to whole minutes before subtraction, then the result is clamped to zero.
func ElapsedMinutes(start, end time.Time, pauseStart time.Time, accumulated time.Duration) int {
	minutes := roundMinutes(end.Sub(start))
	if !pauseStart.IsZero() {
		if open := end.Sub(pauseStart); open > 0 {
			minutes -= roundMinutes(open)
		}
	}
	minutes -= roundMinutes(accumulated)
	if minutes < 0 {
		return 0
	}
	return minutes
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
