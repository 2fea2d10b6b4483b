package scoring

import "math"

// Level is a qualitative band attached to a score.
type Level string

const (
	LevelWeak   Level = "weak"
	LevelMedium Level = "medium"
	LevelStrong Level = "strong"
	LevelLow    Level = "low"
	LevelHigh   Level = "high"
)

// Scale100 maps a raw score onto the common 0-100 range, rounded to the
// nearest integer.
func Scale100(raw, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(max) * 100))
}
