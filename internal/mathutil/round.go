package mathutil

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Precision bounds for RoundTo. Beyond ±292 the shifted exponent overflows float64.
const (
	MinPrecision = -292
	MaxPrecision = 292
)

// RoundTo rounds value to precision decimal digits, ties away from zero.
// Negative precision rounds to tens, hundreds, etc.
//
// The value is shifted through its decimal exponent instead of value*10^p,
// so RoundTo(1.005, 2) == 1.01 while math.Round(1.005*100)/100 == 1.
func RoundTo(value float64, precision int) float64 {
	if precision == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return math.Round(value)
	}
	precision = min(max(precision, MinPrecision), MaxPrecision)

	shifted := shiftExponent(value, precision)
	return shiftExponent(math.Round(shifted), -precision)
}

// shiftExponent returns value*10^shift computed on the decimal representation.
func shiftExponent(value float64, shift int) float64 {
	s := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return value
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return value
	}
	// ErrRange comes with ±Inf or 0 already set, which is the right answer.
	out, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(e+shift), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return value
	}
	return out
}
