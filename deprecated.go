package lencode

import (
	"iter"

	"github.com/pkg/errors"
)

// maxPackWidth bounds the 2^width values the legacy helpers enumerate.
const maxPackWidth = 20

func packWidth(src Source) (int, error) {
	if err := src.validate(); err != nil {
		return 0, err
	}
	width := MinimalLength(uint64(src.Len()))
	if maxPackWidth < width {
		return 0, errors.Wrapf(ErrLength, "pack width %d", width)
	}
	return width, nil
}

// Pack returns a fixed-width stream of every value in [0, 2^w), where w is
// the minimal width of src.Len(). The values of src are not encoded.
//
// Deprecated: use Encode with Fixed.
func Pack(src Source) (*BitStream, error) {
	width, err := packWidth(src)
	if err != nil {
		return nil, err
	}
	return Encode(Range(1<<width), Fixed)
}

// Bitstrings yields every value in [0, 2^w) as its own w-bit codeword,
// where w is the minimal width of src.Len().
//
// Deprecated: use Encode with Fixed, which yields one stream.
func Bitstrings(src Source) (iter.Seq[Codeword], error) {
	width, err := packWidth(src)
	if err != nil {
		return nil, err
	}
	return func(yield func(Codeword) bool) {
		for b := uint64(0); b < 1<<width; b += 1 {
			if yield(Codeword{Value: b, Length: width}) != true {
				return
			}
		}
	}, nil
}
