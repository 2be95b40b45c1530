package bigint

import (
	"fmt"
)

func (i Int) MarshalText() ([]byte, error) {
	return i.appendDecimal(nil), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string so that decoders which
// read numbers into float64 do not lose precision.
func (i Int) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(i.mag())*limbDigits+3)
	buf = append(buf, '"')
	buf = i.appendDecimal(buf)
	return append(buf, '"'), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON integer.
// A JSON null leaves i unchanged.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
