package bigint

import (
	"math/big"
)

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	if v.Sign() == 0 {
		return zeroInt
	}

	var q, r big.Int
	q.Abs(v)
	limbs := make(nat, 0, q.BitLen()/29+1) // 2^29 < limbBase
	for q.Sign() != 0 {
		q.QuoRem(&q, bigLimbBase, &r)
		limbs = append(limbs, uint32(r.Uint64()))
	}
	return newInt(v.Sign() < 0, limbs)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	b.SetInt64(0)
	x := i.mag()
	var limb big.Int
	for k := len(x) - 1; k >= 0; k-- {
		b.Mul(b, bigLimbBase)
		b.Add(b, limb.SetUint64(uint64(x[k])))
	}
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// wrap around like a Go integer conversion. See IsInt64() if you want to
// check before you convert.
func (i Int) AsInt64() int64 {
	x := i.mag()
	var u uint64
	for k := len(x) - 1; k >= 0; k-- {
		u = u*limbBase + uint64(x[k])
	}
	if i.neg {
		u = -u
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	return i.GreaterOrEqualTo(minInt64Int) && i.LessOrEqualTo(maxInt64Int)
}
