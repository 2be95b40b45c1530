package bigint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int with exactly limbs limbs (that
// is, between 9*(limbs-1)+1 and 9*limbs decimal digits) from an external
// source. limbs <= 0 returns 0.
func RandInt(source RandSource, limbs int) Int {
	if limbs <= 0 {
		return zeroInt
	}
	z := make(nat, limbs)
	for k := 0; k < limbs-1; k++ {
		z[k] = uint32(source.Uint64() % limbBase)
	}
	z[limbs-1] = uint32(source.Uint64()%maxLimb) + 1
	return newInt(false, z)
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	return a.Sub(b).Abs()
}

func LargerInt(a, b Int) Int {
	if less(a, b) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if less(b, a) {
		return b
	}
	return a
}
