package lencode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

type snapshot struct {
	Bits        uint64 `cbor:"1,keyasint"`
	Data        []byte `cbor:"2,keyasint"`
	ClassLength int    `cbor:"3,keyasint"`
	ClassOffset uint64 `cbor:"4,keyasint"`
}

// MarshalCBOR encodes the stream together with its tracker state so that
// accumulation can continue after UnmarshalCBOR.
func (s *BitStream) MarshalCBOR() ([]byte, error) {
	data, err := cbor.Marshal(snapshot{
		Bits:        s.n,
		Data:        s.data,
		ClassLength: s.tracker.length,
		ClassOffset: s.tracker.offset,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

func (s *BitStream) UnmarshalCBOR(data []byte) error {
	snap := snapshot{}
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return errors.WithStack(fmt.Errorf("%w: %w", ErrCorruptSnapshot, err))
	}
	if uint64(len(snap.Data)) != (snap.Bits+7)/8 {
		return errors.Wrapf(ErrCorruptSnapshot, "%d bytes for %d bits", len(snap.Data), snap.Bits)
	}
	if rem := snap.Bits % 8; 0 < rem {
		if pad := snap.Data[len(snap.Data)-1] & (0xff >> rem); pad != 0 {
			return errors.Wrap(ErrCorruptSnapshot, "non-zero padding bits")
		}
	}
	tracker := ClassTracker{length: snap.ClassLength, offset: snap.ClassOffset}
	if tracker.valid() != true {
		return errors.Wrapf(ErrCorruptSnapshot, "class %d with offset %d", snap.ClassLength, snap.ClassOffset)
	}

	s.data = snap.Data
	s.n = snap.Bits
	s.tracker = tracker
	return nil
}
