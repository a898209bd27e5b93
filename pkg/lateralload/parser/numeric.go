package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// ParseNumber coerces a loosely typed cell value into an optional number.
//
// Text is case-folded and stripped of "~", "mm", commas and spaces before
// parsing, so "~ 3,000 mm" reads as 3000. Anything that still does not parse
// yields an invalid null.Float; ParseNumber never fails.
func ParseNumber(v any) null.Float {
	switch x := v.(type) {
	case nil:
		return null.Float{}
	case null.Float:
		return x
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return null.FloatFrom(float64(x))
	case int8:
		return null.FloatFrom(float64(x))
	case int16:
		return null.FloatFrom(float64(x))
	case int32:
		return null.FloatFrom(float64(x))
	case int64:
		return null.FloatFrom(float64(x))
	case uint:
		return null.FloatFrom(float64(x))
	case uint8:
		return null.FloatFrom(float64(x))
	case uint16:
		return null.FloatFrom(float64(x))
	case uint32:
		return null.FloatFrom(float64(x))
	case uint64:
		return null.FloatFrom(float64(x))
	case string:
		return parseText(x)
	case fmt.Stringer:
		return parseText(x.String())
	default:
		return parseText(fmt.Sprint(x))
	}
}

// NumberOrZero is ParseNumber with absent values read as 0.
func NumberOrZero(v any) float64 {
	return ParseNumber(v).ValueOrZero()
}

// StripNoise applies the cleanup ParseNumber performs before parsing.
func StripNoise(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "~", "")
	s = strings.ReplaceAll(s, "mm", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}

func parseText(s string) null.Float {
	if strings.TrimSpace(s) == "" {
		return null.Float{}
	}
	f, ok := parseInvariant(StripNoise(s))
	if !ok {
		return null.Float{}
	}
	return null.FloatFrom(f)
}

// parseInvariant parses a plain decimal number. Besides a leading sign it
// accepts a trailing sign ("12-") and accounting parentheses ("(12)") for
// negatives. Hex, inf, nan and out-of-range values are rejected.
func parseInvariant(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	negate := false
	switch {
	case len(s) > 2 && s[0] == '(' && s[len(s)-1] == ')':
		s = s[1 : len(s)-1]
		if s[0] == '+' || s[0] == '-' {
			return 0, false
		}
		negate = true
	case len(s) > 1 && (s[len(s)-1] == '-' || s[len(s)-1] == '+'):
		if s[0] == '+' || s[0] == '-' {
			return 0, false
		}
		negate = s[len(s)-1] == '-'
		s = s[:len(s)-1]
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != 'e' && c != '+' && c != '-' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negate {
		f = -f
	}
	return f, true
}

func finite(f float64) null.Float {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Float{}
	}
	return null.FloatFrom(f)
}
