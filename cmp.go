package bigint

// less reports whether a < b. Signs are canonicalized first so that a zero
// never compares as negative.
func less(a, b Int) bool {
	x, y := a.mag(), b.mag()
	aneg := a.neg && !x.isZero()
	bneg := b.neg && !y.isZero()
	if aneg != bneg {
		return aneg
	}
	if aneg {
		return lessNat(y, x)
	}
	return lessNat(x, y)
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	if less(i, n) {
		return -1
	} else if less(n, i) {
		return 1
	}
	return 0
}

// CmpAbs compares |i| to |n|, returning -1, 0 or +1.
func (i Int) CmpAbs(n Int) int {
	return cmpNat(i.mag(), n.mag())
}

// Equal reports whether i == n, which holds iff neither i < n nor i > n.
func (i Int) Equal(n Int) bool {
	return !less(i, n) && !less(n, i)
}

func (i Int) NotEqual(n Int) bool {
	return less(i, n) || less(n, i)
}

func (i Int) LessThan(n Int) bool {
	return less(i, n)
}

func (i Int) LessOrEqualTo(n Int) bool {
	return !less(n, i)
}

func (i Int) GreaterThan(n Int) bool {
	return less(n, i)
}

func (i Int) GreaterOrEqualTo(n Int) bool {
	return !less(i, n)
}
