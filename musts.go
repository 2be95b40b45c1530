package bigint

import "fmt"

// MustIntFromString is like IntFromString but panics if s is malformed.
func MustIntFromString(s string) Int {
	out, err := IntFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustIntFromString(%q) failed: %v", s, err))
	}
	return out
}

// MustQuo is like Quo but panics if by is zero.
func (i Int) MustQuo(by Int) Int {
	q, err := i.Quo(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", by, err))
	}
	return q
}

// MustRem is like Rem but panics if by is zero.
func (i Int) MustRem(by Int) Int {
	r, err := i.Rem(by)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", by, err))
	}
	return r
}

// MustQuoRem is like QuoRem but panics if by is zero.
func (i Int) MustQuoRem(by Int) (q, r Int) {
	q, r, err := i.QuoRem(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", by, err))
	}
	return q, r
}
