package bigint

// Limb-level primitives. Every input limb must be < limbBase; carries and
// borrows are always 0 or 1.

// addWW returns x+y+c as a limb and the carry out.
func addWW(x, y, c uint32) (s, carry uint32) {
	s = x + y + c
	if s >= limbBase {
		return s - limbBase, 1
	}
	return s, 0
}

// subWW returns x-y-b as a limb and the borrow out.
func subWW(x, y, b uint32) (d, borrow uint32) {
	t := y + b
	if x >= t {
		return x - t, 0
	}
	return x + limbBase - t, 1
}

// mulAddWWW returns x*y+c split into a high and a low limb.
func mulAddWWW(x, y, c uint32) (hi, lo uint32) {
	t := uint64(x)*uint64(y) + uint64(c)
	return uint32(t / limbBase), uint32(t % limbBase)
}

// addVV sets z = x + y over len(z) limbs and returns the carry.
func addVV(z, x, y []uint32) (c uint32) {
	for i := range z {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y over len(z) limbs and returns the borrow.
func subVV(z, x, y []uint32) (b uint32) {
	for i := range z {
		z[i], b = subWW(x[i], y[i], b)
	}
	return b
}

// addVW sets z = x + c and returns the carry.
func addVW(z, x []uint32, c uint32) uint32 {
	for i := range z {
		if c == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = addWW(x[i], 0, c)
	}
	return c
}

// subVW sets z = x - b and returns the borrow.
func subVW(z, x []uint32, b uint32) uint32 {
	for i := range z {
		if b == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], b = subWW(x[i], 0, b)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the high limb.
func mulAddVWW(z, x []uint32, y, r uint32) (c uint32) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}
