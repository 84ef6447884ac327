// Package core holds the transaction model, amount parsing and the summary
// calculator. Amounts are stored as text and converted to float64 only at
// aggregation and display time.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts stored amount text to a float64 for aggregation.
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Text that does not parse contributes zero to any aggregate.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a value with the fixed two-decimal display precision.
// Rounding happens here and nowhere else; stored amounts are never touched.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
