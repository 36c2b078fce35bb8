package predictor

import (
	"strconv"
)

// Round3 rounds x to three decimal places. The exact binary value of x
// is rounded, so 0.1235 (stored as 0.12349999...) becomes 0.123 and
// exact ties go to the even digit.
func Round3(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if err != nil {
		return x
	}
	return v
}
