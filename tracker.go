package lencode

import "github.com/pkg/errors"

// ClassTracker follows the current length class while lencoding a
// sequence. Its length and offset never decrease, so values must arrive
// in non-decreasing class order; 0 and 1 are exempt and always take one bit.
type ClassTracker struct {
	length int
	offset uint64
}

func (t ClassTracker) Length() int {
	return t.length
}

func (t ClassTracker) Offset() uint64 {
	return t.offset
}

// Advance moves the tracker to the class of n when that class is longer
// than the current one and reports whether it moved.
func (t *ClassTracker) Advance(n uint64) bool {
	l := LencodedClassLength(n)
	if l <= t.length {
		return false
	}
	t.length = l
	t.offset = classOffset(l)
	return true
}

// Codeword returns the lencoded codeword for n, advancing the tracker
// when n opens a new class.
func (t *ClassTracker) Codeword(n uint64) (Codeword, error) {
	if n <= 1 {
		return NewCodeword(n, LencodedClassLength(n))
	}
	t.Advance(n)

	l := LencodedClassLength(n)
	if l < t.length {
		return Codeword{}, errors.Wrapf(ErrClassRetreat, "%d has class %d, tracker at %d", n, l, t.length)
	}
	return NewCodeword(n-t.offset, l)
}

func (t ClassTracker) valid() bool {
	if t.length < 0 || MaxLength < t.length {
		return false
	}
	return t.offset == classOffset(t.length)
}
