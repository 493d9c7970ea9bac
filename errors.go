// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"errors"
	"fmt"
	"strings"
)

// ArgError reports an input rejected before any RPC is dispatched: an
// unparsable target, a missing namespace, or a value outside an enumerated
// allowed set. Transport failures are never wrapped in ArgError; they
// propagate as grpc status errors unmodified.
type ArgError struct {
	// Arg names the rejected parameter.
	Arg string

	// Value is the rejected value, when meaningful.
	Value string

	// Allowed is the closed set the value was checked against, if the
	// rejection came from enum validation.
	Allowed []string

	// Message overrides the generated text when set.
	Message string
}

// Error implements the error interface.
func (e *ArgError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("nxos: %s %q must be one of %s", e.Arg, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("nxos: invalid %s %q", e.Arg, e.Value)
}

// ReplyError reports a reply chunk carrying a request id different from the
// one sent, which indicates a confused or misbehaving device stream.
type ReplyError struct {
	Want int64
	Got  int64
}

// Error implements the error interface.
func (e *ReplyError) Error() string {
	return fmt.Sprintf("nxos: reply request id %d does not match request id %d", e.Got, e.Want)
}

// IsValidation reports whether err (or anything it wraps) is a local
// validation failure, as opposed to a transport or device error. Validation
// failures are raised before any network action and retrying them is never
// useful.
func IsValidation(err error) bool {
	var argErr *ArgError
	return errors.As(err, &argErr)
}
