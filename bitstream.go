package lencode

import (
	"bytes"
	"io"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitStream is an append-only sequence of bits. Bits are packed most
// significant first:
//
//	byte  0               1
//	     +---------------+---------------+-
//	     |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|
//	     +---------------+---------------+-
//	bit   0 1 2 3 4 5 6 7 8 9 ...
//
// A stream also carries the lencoded class tracker so that several
// Encode calls accumulate as one sequence. A BitStream is not safe for
// concurrent use.
type BitStream struct {
	data    []byte
	n       uint64
	tracker ClassTracker
}

func NewBitStream() *BitStream {
	return &BitStream{}
}

// Len returns the number of bits in the stream.
func (s *BitStream) Len() uint64 {
	return s.n
}

func (s *BitStream) Tracker() ClassTracker {
	return s.tracker
}

// Bit returns the i-th bit. It panics when i is out of range.
func (s *BitStream) Bit(i uint64) uint8 {
	if s.n <= i {
		panic("lencode: bit index out of range")
	}
	return (s.data[i/8] >> (7 - i%8)) & 1
}

func (s *BitStream) grow(count int) {
	reqBytes := int((s.n + uint64(count) + 7) / 8)
	if reqBytes <= len(s.data) {
		return
	}
	if reqBytes <= cap(s.data) {
		s.data = s.data[:reqBytes]
		return
	}
	buf := make([]byte, reqBytes, reqBytes*2)
	copy(buf, s.data)
	s.data = buf
}

// Append writes c at the end of the stream.
func (s *BitStream) Append(c Codeword) {
	s.grow(c.Length)

	for i := 0; i < c.Length; i += 1 {
		if c.Bit(i) == 1 {
			s.data[s.n/8] |= 1 << (7 - s.n%8)
		}
		s.n += 1
	}
}

// String returns the stream as '0' and '1' characters.
func (s *BitStream) String() string {
	sb := strings.Builder{}
	sb.Grow(int(s.n))
	for i := uint64(0); i < s.n; i += 1 {
		sb.WriteByte('0' + s.Bit(i))
	}
	return sb.String()
}

// Bytes returns a copy of the packed stream. The last byte is padded
// with zero bits.
func (s *BitStream) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// WriteTo writes the packed stream to w.
func (s *BitStream) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)

	full := s.n / 8
	if _, err := bw.Write(s.data[:full]); err != nil {
		return 0, errors.WithStack(err)
	}
	if rem := uint8(s.n % 8); 0 < rem {
		if err := bw.WriteBits(uint64(s.data[full]>>(8-rem)), rem); err != nil {
			return int64(full), errors.WithStack(err)
		}
	}
	if err := bw.Close(); err != nil {
		return int64(full), errors.WithStack(err)
	}
	return int64(len(s.data)), nil
}

// Unpack reads nbits packed bits from r into a new stream. Only the bits
// are restored, the lencoded tracker starts over.
func Unpack(r io.Reader, nbits uint64) (*BitStream, error) {
	br := bitio.NewReader(r)
	s := NewBitStream()
	for remain := nbits; 0 < remain; {
		n := uint8(min(remain, 64))
		v, err := br.ReadBits(n)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		s.Append(Codeword{Value: v, Length: int(n)})
		remain -= uint64(n)
	}
	return s, nil
}

// Equal reports whether both streams hold the same bits.
func (s *BitStream) Equal(o *BitStream) bool {
	return s.n == o.n && bytes.Equal(s.data, o.data)
}
