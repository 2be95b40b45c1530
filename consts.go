package bigint

import (
	"math/big"
)

const (
	// limbBase is the radix of a single limb. Each limb holds limbDigits
	// decimal digits.
	limbBase   = 1000000000
	limbDigits = 9
	maxLimb    = limbBase - 1

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var (
	zeroInt = Int{limbs: nat{0}}
	oneInt  = Int{limbs: nat{1}}

	maxInt64Int = IntFrom64(maxInt64)
	minInt64Int = IntFrom64(minInt64)

	// natZero is returned by Int.mag for the zero value. It must never be
	// written to.
	natZero = nat{0}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	bigLimbBase = new(big.Int).SetUint64(limbBase)
)
