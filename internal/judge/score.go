package judge

import "math"

// Score computes points earned from the fraction of passed cases:
// floor((passed / total) * points). Division happens in floating point before
// flooring so e.g. 1 of 3 cases on a 100-point problem yields 33, not 0.
func Score(passed, total, points int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(passed) / float64(total) * float64(points)))
}
