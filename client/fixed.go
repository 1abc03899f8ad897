package client

import "math"

// Fixed is a signed 24.8 fixed-point number, the wire representation of
// decimal arguments.
type Fixed int32

// FixedFromFloat converts v to the nearest Fixed value. Values outside the
// representable range saturate, NaN becomes zero.
func FixedFromFloat(v float64) Fixed {
	r := math.Round(v * 256)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return Fixed(math.MaxInt32)
	case r <= math.MinInt32:
		return Fixed(math.MinInt32)
	}
	return Fixed(r)
}

// Float converts f to a float64. The conversion is exact.
func (f Fixed) Float() float64 {
	return float64(f) / 256
}

// Int returns the integer part of f, rounded towards zero.
func (f Fixed) Int() int32 {
	return int32(f) / 256
}
