package bigint

import (
	"fmt"
	"io"
)

var (
	_ fmt.Formatter = Int{}
	_ fmt.Scanner   = (*Int)(nil)
)

// Format implements fmt.Formatter. The verbs 'd', 's' and 'v' are
// supported and accept the '+', ' ', '-' and '0' flags and a width. Zero
// padding is inserted between the sign and the digits:
//
//	fmt.Sprintf("%08d", IntFrom64(-42)) // "-0000042"
func (i Int) Format(s fmt.State, verb rune) {
	x := i.mag()
	digits := x.appendDecimal(nil)

	var sign byte
	switch {
	case i.neg && !x.isZero():
		sign = '-'
	case s.Flag('+'):
		sign = '+'
	case s.Flag(' '):
		sign = ' '
	}

	width := len(digits)
	if sign != 0 {
		width++
	}

	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := s.Width(); ok && w > width {
		switch {
		case s.Flag('-'):
			tspaces = w - width
		case s.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for ; lspaces > 0; lspaces-- {
		buf = append(buf, ' ')
	}
	if sign != 0 {
		buf = append(buf, sign)
	}
	for ; lzeroes > 0; lzeroes-- {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	for ; tspaces > 0; tspaces-- {
		buf = append(buf, ' ')
	}

	switch verb {
	case 'd', 's', 'v':
		s.Write(buf)
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, buf)
	}
}

func isNumberRune(r rune) bool {
	return r == '+' || r == '-' || ('0' <= r && r <= '9')
}

// Scan implements fmt.Scanner. It skips leading space, reads one run of
// sign and digit characters and parses it with IntFromString. The verbs 'd',
// 's' and 'v' are supported.
func (i *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bigint: invalid verb %%%c for Int.Scan", verb)
	}

	state.SkipSpace()
	tok, err := state.Token(false, isNumberRune)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		r, _, err := state.ReadRune()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		} else if err != nil {
			return err
		}
		return syntaxError(string(r))
	}

	v, err := IntFromString(string(tok))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
