package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseLenientFloat reads the leading decimal number of s, the way form
// inputs are coerced: "150kg" is 150, "" or "abc" is 0. Never returns NaN or Inf.
func ParseLenientFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseLenientInt reads the leading integer of s: "2.7" is 2, "abc" is 0.
// ok is false when no digits were found.
func ParseLenientInt(s string) (n int, ok bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}
