// Package parse normalizes locale-formatted numeric text.
//
// French-formatted amounts use spaces (often non-breaking) as thousands
// separators and a comma as the decimal separator, e.g. "1 234,56".
// Plain dot-decimal strings are accepted as well.
package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Amount converts locale-formatted numeric text to a float. Empty or
// non-numeric input yields 0, never an error; non-finite values also
// normalize to 0.
func Amount(text string) float64 {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		// Comma is the decimal separator; any periods are thousands
		// separators and must go first.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
