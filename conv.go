package bigint

import (
	"strconv"
)

// IntFrom64 creates an Int from an int64. math.MinInt64 is handled by taking
// the magnitude as a uint64.
func IntFrom64(v int64) Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return newInt(v < 0, natFromUint64(u))
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return newInt(false, natFromUint64(v)) }

// IntFromString creates an Int from a decimal string with an optional
// leading '+' or '-'.
//
// The empty string yields 0. Any other input that is not an optionally
// signed run of ASCII digits returns a *ParseError wrapping
// ErrMalformedInput. Leading zeros are accepted.
func IntFromString(s string) (out Int, err error) {
	if s == "" {
		return zeroInt, nil
	}

	digits, neg := s, false
	switch s[0] {
	case '-':
		digits, neg = s[1:], true
	case '+':
		digits = s[1:]
	}
	if digits == "" {
		return out, syntaxError(s)
	}

	// Split into limbDigits-sized chunks from the least significant end; the
	// leftmost chunk may be shorter.
	limbs := make(nat, 0, (len(digits)+limbDigits-1)/limbDigits)
	for end := len(digits); end > 0; end -= limbDigits {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		v, perr := strconv.ParseUint(digits[start:end], 10, 32)
		if perr != nil {
			return out, syntaxError(s)
		}
		limbs = append(limbs, uint32(v))
	}
	return newInt(neg, limbs), nil
}

// String returns the decimal representation of i.
func (i Int) String() string {
	return string(i.appendDecimal(nil))
}

func (i Int) appendDecimal(buf []byte) []byte {
	x := i.mag()
	if i.neg && !x.isZero() {
		buf = append(buf, '-')
	}
	return x.appendDecimal(buf)
}

// appendDecimal appends the digits of x: the most significant limb without
// padding, every other limb padded to limbDigits.
func (x nat) appendDecimal(buf []byte) []byte {
	top := len(x) - 1
	buf = strconv.AppendUint(buf, uint64(x[top]), 10)

	var chunk [limbDigits]byte
	for k := top - 1; k >= 0; k-- {
		v := x[k]
		for j := limbDigits - 1; j >= 0; j-- {
			chunk[j] = '0' + byte(v%10)
			v /= 10
		}
		buf = append(buf, chunk[:]...)
	}
	return buf
}
