package lencode

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Codeword is one integer written as Length bits, most significant bit first.
type Codeword struct {
	Value  uint64
	Length int
}

func NewCodeword(value uint64, length int) (Codeword, error) {
	if length < 1 || MaxLength < length {
		return Codeword{}, errors.Wrapf(ErrLength, "length %d", length)
	}
	if length < MaxLength && (value>>length) != 0 {
		return Codeword{}, errors.Wrapf(ErrCodewordOverflow, "%d in %d bits", value, length)
	}
	return Codeword{Value: value, Length: length}, nil
}

// Bit returns the i-th bit counted from the most significant end.
func (c Codeword) Bit(i int) uint8 {
	return uint8((c.Value >> (c.Length - 1 - i)) & 1)
}

func (c Codeword) String() string {
	s := strconv.FormatUint(c.Value, 2)
	if len(s) < c.Length {
		return strings.Repeat("0", c.Length-len(s)) + s
	}
	return s
}
