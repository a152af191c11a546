package arena

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every failure reported by this package matches exactly one of
// these through errors.Is.
var (
	// ErrConfig marks a rejected configuration: a non-power-of-two
	// alignment, an unsupported over-alignment, or a request alignment
	// exceeding the arena's.
	ErrConfig = errors.New("invalid configuration")

	// ErrInvalidState marks an operation attempted on an arena with no
	// buffer attached.
	ErrInvalidState = errors.New("no buffer attached")

	// ErrInvalidArgument marks a malformed request, such as a zero-size
	// reallocation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocFailed marks a failed fallback or buffer allocation.
	ErrAllocFailed = errors.New("allocation failed")

	// ErrLifetime marks a tripped outlive check: the cursor no longer lies
	// inside the attached buffer.
	ErrLifetime = errors.New("handle outlived arena")
)

// Error is the structured error returned by all arena operations. It carries
// the operation name, the error kind, and the request that failed.
type Error struct {
	Op    string
	Kind  error
	Size  int
	Align uintptr
	Err   error // underlying cause, if any
}

func (e *Error) Error() string {
	s := fmt.Sprintf("arena: %s: %s", e.Op, e.Kind)
	if e.Size != 0 || e.Align != 0 {
		s += fmt.Sprintf(" (size=%d, align=%d)", e.Size, e.Align)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is matches on the error kind, so errors.Is(err, ErrAllocFailed) works even
// when a platform cause is attached.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func errOp(op string, kind error, size int, align uintptr) error {
	return &Error{Op: op, Kind: kind, Size: size, Align: align}
}
