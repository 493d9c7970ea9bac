// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Body is a fluent builder for the JSON payloads EditConfig consumes, backed
// by sjson path manipulation. Errors are tracked internally so calls can be
// chained; check them through String(), Bytes() or Err().
//
// Example:
//
//	payload, err := nxos.Body{}.
//	    Set("System.name", "nx-sw-01").
//	    Set("System.namespace", "http://cisco.com/ns/yang/cisco-nx-os-device").
//	    String()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := client.EditConfig(ctx, payload)
type Body struct {
	str string
	err error
}

// Set sets a value at the given sjson path and returns the updated Body.
// Paths use dot notation for nesting. After the first error all further
// operations are no-ops preserving that error.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// SetRaw splices a preformed JSON fragment in at the given path, useful for
// embedding an already-compiled container subtree.
func (b Body) SetRaw(path, raw string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.SetRaw(b.str, path, raw)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("SetRaw(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Delete removes the value at the given path and returns the updated Body.
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the built JSON and the first error encountered, if any.
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Bytes returns the built JSON as a byte slice and the first error
// encountered, if any.
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}

// Err returns the first error encountered while building.
func (b Body) Err() error {
	return b.err
}
