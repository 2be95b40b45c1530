package bigint

// Int is an arbitrary-precision signed integer stored as a sign and a
// base 10^9 magnitude. The zero value is 0.
//
// Int is a value type: all binary operations return new values and never
// modify their operands. The compound forms (AddAssign, PreInc, ...) replace
// the receiver's contents; copies taken beforehand are unaffected.
type Int struct {
	limbs nat
	neg   bool
}

// newInt normalizes limbs and clears the sign of zero.
func newInt(neg bool, limbs nat) Int {
	limbs = limbs.norm()
	if limbs.isZero() {
		neg = false
	}
	return Int{limbs: limbs, neg: neg}
}

// mag returns the magnitude of i, mapping the zero value to natZero.
func (i Int) mag() nat {
	if len(i.limbs) == 0 {
		return natZero
	}
	return i.limbs
}

func (i Int) IsZero() bool { return i.mag().isZero() }

// Sign returns -1, 0 or 1.
func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Neg returns -i. Negating zero returns zero.
func (i Int) Neg() Int {
	if i.IsZero() {
		return zeroInt
	}
	return Int{limbs: i.limbs, neg: !i.neg}
}

func (i Int) Abs() Int {
	if i.IsZero() {
		return zeroInt
	}
	return Int{limbs: i.limbs}
}

func (i Int) Inc() Int { return i.Add(oneInt) }
func (i Int) Dec() Int { return i.Sub(oneInt) }

// Add returns i + n.
//
// When the signs differ the smaller magnitude is subtracted from the larger
// and the result takes the sign of the larger operand. Equal magnitudes keep
// the sign of i, which normalization then clears.
func (i Int) Add(n Int) Int {
	x, y := i.mag(), n.mag()
	if i.neg == n.neg {
		return newInt(i.neg, addNat(x, y))
	}
	if lessNat(x, y) {
		return newInt(n.neg, subNat(y, x))
	}
	return newInt(i.neg, subNat(x, y))
}

// Sub returns i - n, computed as i + (-n).
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

// Mul returns i * n.
func (i Int) Mul(n Int) Int {
	return newInt(i.neg != n.neg, mulNat(i.mag(), n.mag()))
}

// QuoRem returns the quotient q and remainder r of i / by, or
// ErrDivisionByZero if by is zero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// so r carries the sign of i.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	qm, rm := divNat(i.mag(), by.mag())
	return newInt(i.neg != by.neg, qm), newInt(i.neg, rm), nil
}

// Quo returns the quotient i/by truncated towards zero, or
// ErrDivisionByZero if by is zero.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder i - by*(i/by), or ErrDivisionByZero if by is
// zero. A non-zero remainder has the sign of i.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// AddAssign sets i to i + n.
func (i *Int) AddAssign(n Int) { *i = i.Add(n) }

// SubAssign sets i to i - n.
func (i *Int) SubAssign(n Int) { *i = i.Sub(n) }

// MulAssign sets i to i * n.
func (i *Int) MulAssign(n Int) { *i = i.Mul(n) }

// QuoAssign sets i to i / by. If by is zero, i is left unchanged and
// ErrDivisionByZero is returned.
func (i *Int) QuoAssign(by Int) error {
	q, err := i.Quo(by)
	if err != nil {
		return err
	}
	*i = q
	return nil
}

// RemAssign sets i to i % by. If by is zero, i is left unchanged and
// ErrDivisionByZero is returned.
func (i *Int) RemAssign(by Int) error {
	r, err := i.Rem(by)
	if err != nil {
		return err
	}
	*i = r
	return nil
}

// PreInc increments i and returns the new value.
func (i *Int) PreInc() Int {
	*i = i.Inc()
	return *i
}

// PostInc increments i and returns the value it held before.
func (i *Int) PostInc() Int {
	old := *i
	*i = i.Inc()
	return old
}

// PreDec decrements i and returns the new value.
func (i *Int) PreDec() Int {
	*i = i.Dec()
	return *i
}

// PostDec decrements i and returns the value it held before.
func (i *Int) PostDec() Int {
	old := *i
	*i = i.Dec()
	return old
}
