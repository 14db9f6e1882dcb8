package pywave

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is wrapped by all Duration parsing failures, so callers can keep
// the previous value with a single errors.Is check.
var ErrParse = errors.New("invalid duration")

type (
	// Unit is a time unit recognized by Duration. The percent unit is
	// relative: it is evaluated against a reference length.
	Unit string

	// Duration is a floating point number associated with a time unit, e.g.
	// the fade time of a cue. Durations are given as strings of the number
	// immediately followed by the unit ("500ms", "2s", "50%"). A Duration is
	// immutable once parsed; evaluation happens on demand against a
	// reference length.
	Duration struct {
		Number float64
		Unit   Unit
	}
)

const (
	Milliseconds Unit = "ms"
	Seconds      Unit = "s"
	Minutes      Unit = "m"
	Percent      Unit = "%"
)

// numberChars are all characters that may appear in the numeric part of a
// Duration string; the scanner takes the maximal prefix drawn from these.
const numberChars = "0123456789.-+"

// ParseDuration parses a string of the form <float><unit>. The numeric part
// is the maximal prefix of number characters; the remainder must exactly
// match one of the recognized units. On failure the returned error wraps
// ErrParse and the caller should keep whatever value it had before.
func ParseDuration(value string) (Duration, error) {
	split := 0
	for split < len(value) && strings.IndexByte(numberChars, value[split]) >= 0 {
		split++
	}
	number, err := strconv.ParseFloat(value[:split], 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q does not start with a number", ErrParse, value)
	}
	unit := Unit(value[split:])
	switch unit {
	case Milliseconds, Seconds, Minutes, Percent:
	default:
		return Duration{}, fmt.Errorf("%w: unrecognized unit %q", ErrParse, value[split:])
	}
	return Duration{Number: number, Unit: unit}, nil
}

// String formats the Duration back to its input form, so that
// ParseDuration(d.String()) == d for any valid Duration. The 'f' format
// never emits an exponent, which the scanner would cut the number at.
func (d Duration) String() string {
	return strconv.FormatFloat(d.Number, 'f', -1, 64) + string(d.Unit)
}

// Eval returns the Duration in milliseconds. Absolute units ignore
// referenceMs; the percent unit is referenceMs * Number / 100.
func (d Duration) Eval(referenceMs float64) float64 {
	switch d.Unit {
	case Seconds:
		return d.Number * 1000
	case Minutes:
		return d.Number * 1000 * 60
	case Percent:
		return referenceMs * d.Number / 100
	default:
		return d.Number
	}
}
