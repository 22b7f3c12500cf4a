package okr

import "math"

// Progress returns actual/target as a ratio rounded to a tenth of a
// percent. A zero target yields 0.
func Progress(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Round(actual/target*1000) / 1000
}
