// Package money reads the formatted price strings returned by the reservation API.
// Parsed values are derived and used for comparison and summing only; the
// formatted string stays authoritative for display and is never sent back.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse keeps only digits and '.' and parses the remainder. Empty or
// unparseable input yields 0.
func Parse(formatted string) float64 {
	var b strings.Builder
	b.Grow(len(formatted))
	for _, r := range formatted {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders v as "$X.YY".
func Format(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func Sum(formatted ...string) float64 {
	var total float64
	for _, s := range formatted {
		total += Parse(s)
	}
	return Round(total)
}

// Round rounds to cents.
func Round(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

func IsPositive(formatted string) bool {
	return Parse(formatted) > 0
}
