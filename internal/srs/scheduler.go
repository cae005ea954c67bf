// Package srs computes review scheduling from mastery. Lower mastery means
// more frequent reviews.
package srs

import "time"

// Review intervals per mastery tier. Boundaries are lower-bound inclusive:
// mastery of exactly 0.30 falls in the 2-day tier.
const (
	day = 24 * time.Hour

	intervalStruggling = 1 * day  // mastery < 0.30
	intervalLearning   = 2 * day  // [0.30, 0.50)
	intervalFamiliar   = 4 * day  // [0.50, 0.70)
	intervalProficient = 7 * day  // [0.70, 0.90)
	intervalMastered   = 14 * day // >= 0.90
)

// Interval returns the spacing for a mastery level. Non-decreasing as mastery
// rises.
func Interval(mastery float64) time.Duration {
	switch {
	case mastery < 0.3:
		return intervalStruggling
	case mastery < 0.5:
		return intervalLearning
	case mastery < 0.7:
		return intervalFamiliar
	case mastery < 0.9:
		return intervalProficient
	default:
		return intervalMastered
	}
}

// NextReview returns when the material should next be reviewed, given the
// mastery level after the latest merge.
func NextReview(mastery float64, now time.Time) time.Time {
	return now.Add(Interval(mastery))
}
