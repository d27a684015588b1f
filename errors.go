package lencode

import "github.com/pkg/errors"

// Error classes. Every error returned by this package wraps one of them.
var (
	ErrInputConflict = errors.New("lencode: input conflict")
	ErrType          = errors.New("lencode: type error")
	ErrValue         = errors.New("lencode: value error")
)

var (
	ErrSourceConflict = errors.Wrap(ErrInputConflict, "both sequence and count given")
	ErrNoSource       = errors.Wrap(ErrInputConflict, "must provide a sequence or a count")
	ErrPolicyConflict = errors.Wrap(ErrInputConflict, "cannot lencode at fixed length")

	ErrUnknownPolicy = errors.Wrap(ErrType, "unknown encoding policy")
	ErrMixedTypes    = errors.Wrap(ErrType, "sequence of mixed types")
	ErrNotInteger    = errors.Wrap(ErrType, "sequence element is not an integer")
	ErrNilStream     = errors.Wrap(ErrType, "target stream is nil")

	ErrNegativeCount    = errors.Wrap(ErrValue, "count cannot be negative")
	ErrNegativeValue    = errors.Wrap(ErrValue, "sequence element cannot be negative")
	ErrLength           = errors.Wrap(ErrValue, "codeword length out of range")
	ErrCodewordOverflow = errors.Wrap(ErrValue, "value does not fit codeword length")
	ErrClassRetreat     = errors.Wrap(ErrValue, "lencoded value below current length class")
	ErrCorruptSnapshot  = errors.Wrap(ErrValue, "corrupt stream snapshot")
)
