// Package money handles the rupee amounts that circulate through the
// store as formatted strings ("₹550").
package money

import "strconv"

// Parse extracts the numeric value from a currency-formatted string by
// discarding every non-digit rune. A string with no digits parses to 0.
func Parse(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}

func Format(n int) string {
	return "₹" + strconv.Itoa(n)
}
