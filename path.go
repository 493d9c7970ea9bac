// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"encoding/json"
	"strings"
)

// CompileXPath converts a slash-separated YANG container path into the nested
// JSON payload the device expects for a path-only query, with the namespace
// injected at the top level next to the outermost container.
//
//	CompileXPath("a/b/c", "ns1")
//	  -> {"a":{"b":{"c":{}}},"namespace":"ns1"}
//
// The namespace is mandatory: without it the device cannot disambiguate
// container identity, so an empty namespace is rejected before any dispatch.
// Elements are taken verbatim; leading or trailing slashes produce
// empty-string keys, so callers must supply well-formed paths. Output is
// deterministic for identical inputs (keys are serialized in sorted order).
//
// Predicates and attributes are not supported. This trades full XPath
// expressiveness for a predictable container-path encoding that covers the
// device's query model.
func CompileXPath(xpath, namespace string) (string, error) {
	if namespace == "" {
		return "", &ArgError{
			Arg:     "namespace",
			Message: "nxos: namespace is required when compiling an XPath",
		}
	}

	elements := strings.Split(xpath, "/")

	// Fold inside out: the last element becomes the innermost empty
	// container, each earlier element wraps what came before.
	nested := map[string]any{elements[len(elements)-1]: map[string]any{}}
	for i := len(elements) - 2; i >= 0; i-- {
		nested = map[string]any{elements[i]: nested}
	}
	nested["namespace"] = namespace

	out, err := json.Marshal(nested)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
