/*
Package bigint provides an arbitrary-precision signed integer (Int) stored as
a sign and a little-endian sequence of base 10^9 limbs.

Int is a value type; all binary operations return new values. Compound
assignment forms are available on *Int for callers that want in-place
updates.

Simple example:

	a := bigint.MustIntFromString("123456789123456789")
	b := bigint.IntFrom64(987654321)
	fmt.Println(a.Mul(b))
	// Output: 121932631234567900112635269

Ints can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)

Division and modulo truncate towards zero, like Go's / and % operators, and
return ErrDivisionByZero instead of panicking. Malformed strings return a
*ParseError wrapping ErrMalformedInput.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Scanner
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bigint
