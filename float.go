package bigint

import (
	"math"
	"strconv"
)

// IntFromFloat64 creates an Int from the integer part of f, truncating
// towards zero. NaN and the infinities return 0 and inRange == false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return zeroInt, false
	}

	f = math.Trunc(f)
	if f >= minInt64 && f < -minInt64 {
		return IntFrom64(int64(f)), true
	}

	// Anything this far from zero is already an integer, and formatting with
	// no fraction digits prints it exactly.
	buf := strconv.AppendFloat(make([]byte, 0, 24), f, 'f', 0, 64)
	out, err := IntFromString(string(buf))
	if err != nil {
		panic(err)
	}
	return out, true
}

// AsFloat64 returns the float64 nearest to i. Values beyond the float64
// range return ±Inf.
func (i Int) AsFloat64() float64 {
	if len(i.mag()) <= 2 {
		// < 10^18, so it converts through int64 without loss.
		return float64(i.AsInt64())
	}
	f, _ := strconv.ParseFloat(string(i.appendDecimal(nil)), 64)
	return f
}
