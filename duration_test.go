package pywave_test

import (
	"errors"
	"testing"

	pywave "github.com/BenjaminSchaaf/PyWave"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input  string
		number float64
		unit   pywave.Unit
	}{
		{"500ms", 500, pywave.Milliseconds},
		{"2s", 2, pywave.Seconds},
		{"1.5s", 1.5, pywave.Seconds},
		{"50%", 50, pywave.Percent},
		{"1m", 1, pywave.Minutes},
		{"0s", 0, pywave.Seconds},
		{"-100ms", -100, pywave.Milliseconds},
		{"+3s", 3, pywave.Seconds},
	}
	for _, test := range tests {
		d, err := pywave.ParseDuration(test.input)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", test.input, err)
		}
		if d.Number != test.number || d.Unit != test.unit {
			t.Errorf("ParseDuration(%q) = %v%v, expected %v%v", test.input, d.Number, d.Unit, test.number, test.unit)
		}
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, input := range []string{"", "ms", "500", "500 ms", "2x", "s2", "5%%", "2ss"} {
		_, err := pywave.ParseDuration(input)
		if err == nil {
			t.Errorf("ParseDuration(%q) expected an error", input)
		}
		if !errors.Is(err, pywave.ErrParse) {
			t.Errorf("ParseDuration(%q) error should wrap ErrParse, got %v", input, err)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, input := range []string{"500ms", "2s", "1.5s", "50%", "1m", "0s", "0.00001s", "-0.0002ms"} {
		d, err := pywave.ParseDuration(input)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", input, err)
		}
		d2, err := pywave.ParseDuration(d.String())
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", d.String(), err)
		}
		if d2 != d {
			t.Errorf("round trip of %q: got %v, expected %v", input, d2, d)
		}
	}
	// values that only arise programmatically must still format parseable
	for _, number := range []float64{1e-5, 12345678901234567890123, 0.25, -3} {
		d := pywave.Duration{Number: number, Unit: pywave.Seconds}
		d2, err := pywave.ParseDuration(d.String())
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", d.String(), err)
		}
		if d2 != d {
			t.Errorf("round trip of %v: got %v via %q", d, d2, d.String())
		}
	}
}

func TestDurationEval(t *testing.T) {
	tests := []struct {
		input       string
		referenceMs float64
		expected    float64
	}{
		{"500ms", 0, 500},
		{"500ms", 10000, 500},
		{"2s", 0, 2000},
		{"1m", 0, 60000},
		{"50%", 2000, 1000},
		{"100%", 1234, 1234},
		{"0%", 2000, 0},
	}
	for _, test := range tests {
		d, err := pywave.ParseDuration(test.input)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", test.input, err)
		}
		if got := d.Eval(test.referenceMs); got != test.expected {
			t.Errorf("%q.Eval(%v) = %v, expected %v", test.input, test.referenceMs, got, test.expected)
		}
	}
}
