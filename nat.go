package bigint

// nat is an unsigned magnitude of the form
//
//	x = x[n-1]*limbBase^(n-1) + ... + x[1]*limbBase + x[0]
//
// with 0 <= x[i] < limbBase, stored least-significant limb first.
//
// A nat is normalized if it has no most-significant zero limbs, except for
// zero itself which is the single limb 0. All functions in this file return
// normalized values and never write to their arguments.
type nat []uint32

// norm strips most-significant zero limbs, leaving at least one limb.
func (x nat) norm() nat {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return x[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nat{0}
	}
	z := make(nat, 0, 3) // 2^64 needs 3 limbs
	for v != 0 {
		z = append(z, uint32(v%limbBase))
		v /= limbBase
	}
	return z
}

// lessNat reports whether x < y. Both must be normalized: a shorter
// magnitude is always smaller.
func lessNat(x, y nat) bool {
	if len(x) != len(y) {
		return len(x) < len(y)
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return false
}

func equalNat(x, y nat) bool {
	if len(x) != len(y) {
		return false
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func cmpNat(x, y nat) int {
	if lessNat(x, y) {
		return -1
	} else if lessNat(y, x) {
		return 1
	}
	return 0
}

// addNat returns x + y. The result has at most max(len(x), len(y))+1 limbs.
func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	c = addVW(z[len(y):len(x)], x[len(y):], c)
	z[len(x)] = c
	return z.norm()
}

// subNat returns x - y. The caller must ensure x >= y.
func subNat(x, y nat) nat {
	if len(x) < len(y) {
		panic("bigint: subNat minuend shorter than subtrahend")
	}
	z := make(nat, len(x))
	b := subVV(z[:len(y)], x[:len(y)], y)
	b = subVW(z[len(y):], x[len(y):], b)
	if b != 0 {
		panic("bigint: subNat underflow")
	}
	return z.norm()
}

// mulNat returns x * y using the schoolbook method. Products are accumulated
// in a 64-bit buffer one longer than the widest possible result so a carry
// can always settle.
func mulNat(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	acc := make([]uint64, len(x)+len(y)+1)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(y) || carry != 0; j++ {
			t := acc[i+j] + carry
			if j < len(y) {
				t += uint64(xi) * uint64(y[j])
			}
			acc[i+j] = t % limbBase
			carry = t / limbBase
		}
	}
	z := make(nat, len(acc))
	for i, v := range acc {
		z[i] = uint32(v)
	}
	return z.norm()
}

// mulLimbNat returns x * y for a single limb y.
func mulLimbNat(x nat, y uint32) nat {
	if y == 0 || x.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z.norm()
}

// shlInsert returns z*limbBase + d, reusing z's storage. z must be owned by
// the caller and normalized; the result is normalized.
func (z nat) shlInsert(d uint32) nat {
	if z.isZero() {
		return append(z[:0], d)
	}
	z = append(z, 0)
	copy(z[1:], z[:len(z)-1])
	z[0] = d
	return z
}

// quoDigit returns the largest q in [0, limbBase) such that y*q <= cur,
// found by binary search with mulLimbNat as the oracle.
func quoDigit(y, cur nat) uint32 {
	if lessNat(cur, y) {
		return 0
	}
	var q uint32
	lo, hi := 0, maxLimb
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if lessNat(cur, mulLimbNat(y, uint32(mid))) {
			hi = mid - 1
		} else {
			q = uint32(mid)
			lo = mid + 1
		}
	}
	return q
}

// divNat returns the truncated quotient and remainder of x / y. y must not
// be zero.
func divNat(x, y nat) (q, r nat) {
	if y.isZero() {
		panic("bigint: divNat by zero")
	}
	if lessNat(x, y) {
		return nat{0}, x
	}

	q = make(nat, len(x))
	cur := make(nat, 0, len(y)+1)
	for i := len(x) - 1; i >= 0; i-- {
		cur = cur.shlInsert(x[i])
		d := quoDigit(y, cur)
		q[i] = d
		if d != 0 {
			cur = subNat(cur, mulLimbNat(y, d))
		}
	}
	return q.norm(), cur
}
