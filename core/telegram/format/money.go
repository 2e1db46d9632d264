package format

import "strconv"

// Money renders a monetary value with exactly two decimal places.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
