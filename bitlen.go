package lencode

import "math/bits"

// MaxLength is the longest codeword a stream accepts.
const MaxLength = 64

func bitWidth(n uint64) int {
	return bits.Len64(n)
}

// MinimalLength returns the number of bits needed to write n in binary.
// Zero still takes one bit.
func MinimalLength(n uint64) int {
	return max(1, bitWidth(n))
}

// LencodedClassLength returns the codeword length of the length class
// holding n, bitWidth(n+2)-1. It steps up at n = 2, 6, 14, 30, ...
func LencodedClassLength(n uint64) int {
	sum, carry := bits.Add64(n, 2, 0)
	if carry != 0 {
		// n+2 == 2^64 + sum
		return MaxLength
	}
	return bitWidth(sum) - 1
}

// LencodedClassOffset returns 2^L - 2 for the class length L of n: the
// value subtracted from n to get its codeword value inside the class.
func LencodedClassOffset(n uint64) uint64 {
	return classOffset(LencodedClassLength(n))
}

func classOffset(length int) uint64 {
	if length <= 1 {
		return 0
	}
	if length == MaxLength {
		return ^uint64(0) - 1
	}
	return (uint64(1) << length) - 2
}

// fixedWidth is the single width used by the fixed policy for range(n).
func fixedWidth(n int) int {
	if 2 < n {
		return MinimalLength(uint64(n - 1))
	}
	return 1
}
