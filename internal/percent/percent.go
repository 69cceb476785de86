// Package percent holds the shared percent arithmetic behind every progress
// bar, level badge, and end-of-game score in the app. The formula truncates
// toward zero so that, e.g., 2 of 300 reads as 0%, never rounded up.
package percent

// Calculate returns value as a whole percentage of count, in [0, 100].
// value is clamped into [0, count] first; count == 0 yields 0.
func Calculate(value, count int) int {
	if count == 0 {
		return 0
	}
	if value < 0 {
		value = 0
	}
	if value > count {
		value = count
	}
	return value * 100 / count
}

// Level classifies a percent value into coarse progress bands.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

// Thresholds for Level classification.
const (
	mediumFloor = 40
	highFloor   = 80
)

// LevelOf maps a percent value to its Level.
func LevelOf(pct int) Level {
	switch {
	case pct >= highFloor:
		return LevelHigh
	case pct >= mediumFloor:
		return LevelMedium
	}
	return LevelLow
}

// IsHigh reports whether pct reaches the high band. Arcade section
// unlocking treats the first section below this bar as the current one.
func IsHigh(pct int) bool {
	return pct >= highFloor
}
