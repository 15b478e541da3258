package secretshare

import (
	"errors"
	"fmt"

	"github.com/coinbase/go-secretshare/pkg/secretshare/share"
)

// ErrCannotRestore indicates that Restore (or the implicit restore step
// inside Modify) could not recover a secret from the supplied parts: the
// parts do not satisfy the configuration's formula.
var ErrCannotRestore = errors.New("secretshare: parts do not satisfy the access formula")

// ErrCannotModify indicates that Modify's target configuration is
// inconsistent with the secret already encoded by the source parts — for
// example, shrinking an AND gate's child set below what the retained shares
// already sum to. Reshaping to a target this aggressive requires a fresh
// Split, not a Modify.
var ErrCannotModify = errors.New("secretshare: target formula is inconsistent with existing shares")

// Error wraps a failure with the operation that produced it, following the
// package's convention of naming the call ("Split", "Restore", "Modify")
// rather than repeating the underlying error's text.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("secretshare: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// remapError translates an error surfaced by the formula/gf/share layers
// into a façade-level error for op, preserving it as the Unwrap() chain so
// callers can still errors.Is against the original sentinel.
func remapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, share.ErrInconsistent) {
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrCannotModify, err)}
	}
	return &Error{Op: op, Err: err}
}
