package value

import (
	"math"
	"strconv"
)

// FormatNumber renders a float64 the way FLS prints numbers: without a
// fractional part when the value is exactly representable as a 64-bit
// integer, and with up to 15 significant digits otherwise.
func FormatNumber(n float64) string {
	if i := int64(n); float64(i) == n && !math.IsInf(n, 0) {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(n, 'g', 15, 64)
}
