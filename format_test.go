package bigint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntFormat(t *testing.T) {
	for idx, tc := range []struct {
		in  Int
		f   string
		out string
	}{
		{i64(123), "%v", "123"},
		{i64(-123), "%v", "-123"},
		{i64(123), "%s", "123"},
		{i64(123), "%d", "123"},
		{ints("-1000000000000000000"), "%d", "-1000000000000000000"},
		{i64(123), "%+d", "+123"},
		{i64(-123), "%+d", "-123"},
		{i64(0), "%+d", "+0"},
		{i64(123), "% d", " 123"},
		{i64(-123), "% d", "-123"},
		{i64(42), "%8d", "      42"},
		{i64(-42), "%8d", "     -42"},
		{i64(42), "%-8d|", "42      |"},
		{i64(-42), "%-8d|", "-42     |"},
		{i64(42), "%08d", "00000042"},
		{i64(-42), "%08d", "-0000042"},
		{i64(42), "%+08d", "+0000042"},
		{i64(42), "%-08d|", "42      |"},
		{ints("123456789123456789"), "%4d", "123456789123456789"},
		{Int{}, "%d", "0"},
		{i64(42), "%x", "%!x(bigint.Int=42)"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.f, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.f, tc.in))
		})
	}
}

func TestIntFormatMatchesBigInt(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, f := range []string{"%d", "%+d", "% d", "%30d", "%-30d|", "%030d", "%+030d"} {
		for i := 0; i < 200; i++ {
			b := randomBigInt(globalRNG, 40)
			v := IntFromBigInt(b)
			tt.MustEqual(fmt.Sprintf(f, b), fmt.Sprintf(f, v), "format %q at index %d", f, i)
		}
	}
}

func TestIntScan(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Int
	}{
		{"0", i64(0)},
		{"  -0", i64(0)},
		{"1", i64(1)},
		{"-1", i64(-1)},
		{"+1", i64(1)},
		{"  1000000000", ints("1000000000")},
		{"\t-123456789123456789 trailing", ints("-123456789123456789")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Int
			n, err := fmt.Sscan(tc.in, &v)
			tt.MustOK(err)
			tt.MustEqual(1, n)
			mustEqualInt(tt, tc.out, v)
		})
	}
}

func TestIntScanMultiple(t *testing.T) {
	tt := assert.WrapTB(t)

	var a, b Int
	var s string
	n, err := fmt.Sscanf("100 + -7", "%d %s %d", &a, &s, &b)
	tt.MustOK(err)
	tt.MustEqual(3, n)
	mustEqualInt(tt, i64(100), a)
	tt.MustEqual("+", s)
	mustEqualInt(tt, i64(-7), b)
}

func TestIntScanFails(t *testing.T) {
	tt := assert.WrapTB(t)

	var v Int
	_, err := fmt.Sscan("abc", &v)
	tt.MustAssert(errors.Is(err, ErrMalformedInput), err)

	_, err = fmt.Sscan("-", &v)
	tt.MustAssert(errors.Is(err, ErrMalformedInput), err)

	_, err = fmt.Sscan("1-2", &v)
	tt.MustAssert(errors.Is(err, ErrMalformedInput), err)

	_, err = fmt.Sscan("   ", &v)
	tt.MustAssert(err != nil)
	tt.MustAssert(errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF), err)

	_, err = fmt.Sscanf("1", "%x", &v)
	tt.MustAssert(err != nil)

	tt.MustAssert(v.IsZero())
}

func TestIntMarshalText(t *testing.T) {
	for idx, tc := range []Int{
		i64(0),
		i64(-1),
		ints("123456789123456789123456789"),
		ints("-1000000000"),
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bts, err := tc.MarshalText()
			tt.MustOK(err)
			tt.MustEqual(tc.String(), string(bts))

			var v Int
			tt.MustOK(v.UnmarshalText(bts))
			mustEqualInt(tt, tc, v)
		})
	}
}

func TestIntUnmarshalTextFails(t *testing.T) {
	tt := assert.WrapTB(t)
	v := i64(5)
	err := v.UnmarshalText([]byte("5.5"))
	tt.MustAssert(errors.Is(err, ErrMalformedInput))
	mustEqualInt(tt, i64(5), v)
}

func TestIntJSON(t *testing.T) {
	type wrapper struct {
		N Int  `json:"n"`
		P *Int `json:"p,omitempty"`
	}

	tt := assert.WrapTB(t)

	n := ints("-123456789123456789123456789")
	p := ints("1000000000")
	bts, err := json.Marshal(wrapper{N: n, P: &p})
	tt.MustOK(err)
	tt.MustEqual(`{"n":"-123456789123456789123456789","p":"1000000000"}`, string(bts))

	var out wrapper
	tt.MustOK(json.Unmarshal(bts, &out))
	mustEqualInt(tt, n, out.N)
	mustEqualInt(tt, p, *out.P)
}

func TestIntUnmarshalJSON(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Int
	}{
		{`"0"`, i64(0)},
		{`"-5"`, i64(-5)},
		{`12`, i64(12)},
		{`-123456789123456789123456789`, ints("-123456789123456789123456789")},
		{`"123456789123456789123456789"`, ints("123456789123456789123456789")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Int
			tt.MustOK(json.Unmarshal([]byte(tc.in), &v))
			mustEqualInt(tt, tc.out, v)
		})
	}
}

func TestIntUnmarshalJSONNull(t *testing.T) {
	tt := assert.WrapTB(t)
	v := i64(7)
	tt.MustOK(json.Unmarshal([]byte(`null`), &v))
	mustEqualInt(tt, i64(7), v)
}

func TestIntUnmarshalJSONFails(t *testing.T) {
	for idx, tc := range []string{
		`"1.5"`,
		`1.5`,
		`1e3`,
		`"abc"`,
		`true`,
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Int
			tt.MustAssert(json.Unmarshal([]byte(tc), &v) != nil)
		})
	}
}
