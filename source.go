package lencode

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Source is what gets encoded: either range(n) or an explicit sequence of
// non-negative integers. The zero Source names neither and is rejected
// by Encode.
type Source struct {
	values  []uint64
	n       int
	isCount bool
	isSeq   bool
	err     error
}

// Range is the sequence 0, 1, ..., n-1.
func Range(n int) Source {
	src := Source{n: n, isCount: true}
	if n < 0 {
		src.err = errors.Wrapf(ErrNegativeCount, "n=%d", n)
	}
	return src
}

func Seq[T Integer](values ...T) Source {
	src := Source{values: make([]uint64, len(values)), n: len(values), isSeq: true}
	for i, v := range values {
		if v < 0 {
			src.err = errors.Wrapf(ErrNegativeValue, "element %d is %d", i, v)
			return src
		}
		src.values[i] = uint64(v)
	}
	return src
}

// Values builds a Source from untyped values. All elements must share
// one integer type.
func Values(values []any) Source {
	src := Source{values: make([]uint64, len(values)), n: len(values), isSeq: true}
	if len(values) == 0 {
		return src
	}
	first := reflect.TypeOf(values[0])
	for i, v := range values {
		if t := reflect.TypeOf(v); t != first {
			src.err = errors.Wrapf(ErrMixedTypes, "element %d is %v, element 0 is %v", i, t, first)
			return src
		}
		u, err := toUint64(v)
		if err != nil {
			src.err = errors.Wrapf(err, "element %d", i)
			return src
		}
		src.values[i] = u
	}
	return src
}

func toUint64(v any) (uint64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i < 0 {
			return 0, errors.Wrapf(ErrNegativeValue, "%d", i)
		}
		return uint64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	}
	return 0, errors.Wrapf(ErrNotInteger, "%T", v)
}

// Resolve picks the source from an optional sequence and an optional
// count. Exactly one of them must be given.
func Resolve(values []any, n *int) Source {
	switch {
	case values != nil && n != nil:
		return Source{err: errors.WithStack(ErrSourceConflict)}
	case n != nil:
		return Range(*n)
	case values != nil:
		return Values(values)
	}
	return Source{}
}

func (src Source) validate() error {
	if src.err != nil {
		return src.err
	}
	if src.isCount != true && src.isSeq != true {
		return errors.WithStack(ErrNoSource)
	}
	return nil
}

// Len returns the number of integers in the source.
func (src Source) Len() int {
	return src.n
}

// At returns the i-th integer of the source.
func (src Source) At(i int) uint64 {
	if src.isCount {
		return uint64(i)
	}
	return src.values[i]
}

// fixedWidth is the width every codeword takes under the fixed policy.
func (src Source) fixedWidth() int {
	if src.isCount {
		return fixedWidth(src.n)
	}
	m := uint64(0)
	for _, v := range src.values {
		m = max(m, v)
	}
	return MinimalLength(m)
}

func (src Source) String() string {
	if src.isCount {
		return fmt.Sprintf("range(%d)", src.n)
	}
	return fmt.Sprint(src.values)
}
