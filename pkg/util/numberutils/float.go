package numberutils

import "math"

// Round rounds half away from zero, so 2.5 becomes 3 and -2.5 becomes -3.
// Negative zero is normalized to zero. The result stays a float64 so that
// magnitudes beyond the int range keep their value and sign.
func Round(value float64) float64 {
	rounded := math.Round(value)
	if rounded == 0 {
		return 0
	}
	return rounded
}
