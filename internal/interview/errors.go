package interview

import (
	"errors"
	"fmt"
)

// Error taxonomy for the interview workflow. Every propagated failure wraps
// one of these sentinels and names the operation plus the identifier that
// triggered it.
var (
	// ErrNotFound signals a persona or session id with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed signals an operation invoked before its
	// required predecessor state exists.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrParseFailure signals completion output that could not be
	// structured as required and had no local fallback.
	ErrParseFailure = errors.New("unparseable completion output")

	// ErrUpstreamFailure signals that the completion provider itself
	// errored.
	ErrUpstreamFailure = errors.New("completion provider failure")
)

func notFoundErr(op, kind, id string) error {
	return fmt.Errorf("%s: %s %q: %w", op, kind, id, ErrNotFound)
}

func preconditionErr(op, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, ErrPreconditionFailed)
}

func upstreamErr(op, id string, err error) error {
	if id == "" {
		return fmt.Errorf("%s: %w: %v", op, ErrUpstreamFailure, err)
	}
	return fmt.Errorf("%s (%s): %w: %v", op, id, ErrUpstreamFailure, err)
}
