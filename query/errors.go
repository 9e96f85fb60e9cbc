package query

import (
	"errors"
	"fmt"

	"mirror/member"
)

// Usage errors. Compare with errors.Is.
var (
	ErrNoSuchMember         = errors.New("no such member")
	ErrAmbiguousMember      = errors.New("ambiguous member")
	ErrUnsupportedSelection = errors.New("unsupported selection mode")
	ErrInvalidState         = errors.New("invalid query state")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// InvocationFailedError wraps a failure of the underlying access or call:
// a receiver or argument mismatch, an error result or a panic.
type InvocationFailedError struct {
	Member member.Member
	Op     string // "get", "set", "invoke" or "construct"
	Err    error
}

func (e *InvocationFailedError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Member, e.Err)
}

func (e *InvocationFailedError) Unwrap() error {
	return e.Err
}

func failed(m member.Member, op string, err error) error {
	if err == nil {
		return nil
	}

	return &InvocationFailedError{Member: m, Op: op, Err: err}
}
