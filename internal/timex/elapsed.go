package timex

import "time"

// ElapsedSeconds reconciles a timer that banked accumulated seconds before
// its current run segment began at start. A paused timer reports the bank
// alone. A start in the future (clock skew) contributes nothing.
func ElapsedSeconds(accumulated int64, paused bool, start, now time.Time) int64 {
	if paused {
		return accumulated
	}
	run := int64(now.Sub(start) / time.Second)
	if run < 0 {
		run = 0
	}
	return accumulated + run
}

// CeilMinutes rounds seconds up to whole minutes.
func CeilMinutes(seconds int64) int {
	return int(ceilDiv(seconds, 60))
}

// ceilDiv divides rounding toward positive infinity. Go's division truncates
// toward zero, which already is the ceiling for negative quotients.
func ceilDiv(a, b int64) int64 {
	if a > 0 {
		return (a + b - 1) / b
	}
	return a / b
}
