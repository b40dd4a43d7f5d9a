package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec.md §7. Container and codec
// errors wrap one of these with fmt.Errorf("...: %w", ...); callers should
// test with errors.Is.
var (
	ErrUnexpectedEOF    = errors.New("ffmpreg: unexpected eof")
	ErrWriteZero        = errors.New("ffmpreg: write zero")
	ErrBadMagic         = errors.New("ffmpreg: bad magic")
	ErrUnsupportedCodec = errors.New("ffmpreg: unsupported codec")
	ErrInvalidFormat    = errors.New("ffmpreg: invalid format")
	ErrUseAfterFinalize = errors.New("ffmpreg: use after finalize")
	ErrNonSeekableSink  = errors.New("ffmpreg: non-seekable sink")
	ErrUnsupported      = errors.New("ffmpreg: unsupported operation")
)

// TransformError wraps a domain reason returned by a Transform, recording
// which transform in a chain produced it.
type TransformError struct {
	Transform string
	Err       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("ffmpreg: transform %q failed: %v", e.Transform, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
