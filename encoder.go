package lencode

import "github.com/pkg/errors"

type encodeOptions struct {
	stream    *BitStream
	streamSet bool
	logger    Logger
}

type Option func(*encodeOptions)

// WithStream appends to s instead of a new stream. The lencoded tracker
// state of s carries over.
func WithStream(s *BitStream) Option {
	return func(o *encodeOptions) {
		o.stream = s
		o.streamSet = true
	}
}

// WithVerbose logs the source and every inserted codeword to stderr.
func WithVerbose(v bool) Option {
	return func(o *encodeOptions) {
		if v {
			o.logger = defaultLogger()
		} else {
			o.logger = nil
		}
	}
}

// WithLogger logs like WithVerbose but to l.
func WithLogger(l Logger) Option {
	return func(o *encodeOptions) {
		o.logger = l
	}
}

// Encode writes the codewords of src under policy p and returns the
// stream. On error the target stream is left untouched.
func Encode(src Source, p Policy, funcs ...Option) (*BitStream, error) {
	opts := encodeOptions{}
	for _, fn := range funcs {
		fn(&opts)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	if opts.streamSet && opts.stream == nil {
		return nil, errors.WithStack(ErrNilStream)
	}

	bs := opts.stream
	if bs == nil {
		bs = NewBitStream()
	}
	if src.Len() == 0 {
		return bs, nil
	}

	logf(opts.logger, "initialising %s stream on %s", p, src)

	tracker := bs.tracker
	codewords, err := plan(src, p, &tracker)
	if err != nil {
		return nil, err
	}
	for _, c := range codewords {
		logf(opts.logger, "inserting %d at length %d", c.Value, c.Length)
		bs.Append(c)
	}
	bs.tracker = tracker
	return bs, nil
}

// Codewords returns the codewords Encode would write for src into a new
// stream, without writing them.
func Codewords(src Source, p Policy) ([]Codeword, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	tracker := ClassTracker{}
	return plan(src, p, &tracker)
}

func plan(src Source, p Policy, tracker *ClassTracker) ([]Codeword, error) {
	out := make([]Codeword, src.Len())

	switch p {
	case Fixed:
		width := src.fixedWidth()
		for i := range out {
			c, err := NewCodeword(src.At(i), width)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
	case LenCoded:
		for i := range out {
			c, err := tracker.Codeword(src.At(i))
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = c
		}
	default:
		for i := range out {
			b := src.At(i)
			c, err := NewCodeword(b, MinimalLength(b))
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
	}
	return out, nil
}
