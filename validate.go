// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

// Datastore sources and targets
const (
	// SourceRunning is the running configuration datastore. It is the only
	// source the device is confirmed to accept.
	SourceRunning = "running"

	// TargetRunning is the only supported EditConfig target datastore.
	TargetRunning = "running"
)

// EditConfig operations
const (
	EditOpMerge   = "merge"
	EditOpCreate  = "create"
	EditOpReplace = "replace"
	EditOpDelete  = "delete"
	EditOpRemove  = "remove"
)

// EditConfig default operations, applied while traversing the configuration
// tree
const (
	DefaultOpMerge   = "merge"
	DefaultOpReplace = "replace"
	DefaultOpNone    = "none"
)

// EditConfig error handling policies
const (
	ErrorOpRollBack = "roll-back"
	ErrorOpStop     = "stop"
	ErrorOpContinue = "continue"
)

// ValidSources contains the accepted GetConfig source datastores.
var ValidSources = []string{SourceRunning}

// ValidTargets contains the accepted EditConfig target datastores.
var ValidTargets = []string{TargetRunning}

// ValidEditOperations contains the accepted EditConfig operations.
var ValidEditOperations = []string{EditOpMerge, EditOpCreate, EditOpReplace, EditOpDelete, EditOpRemove}

// ValidDefaultOperations contains the accepted EditConfig default operations.
var ValidDefaultOperations = []string{DefaultOpMerge, DefaultOpReplace, DefaultOpNone}

// ValidErrorOperations contains the accepted EditConfig error policies.
var ValidErrorOperations = []string{ErrorOpRollBack, ErrorOpStop, ErrorOpContinue}

// validateEnumArg checks value against a closed allowed set. Matching is
// exact and case sensitive. Returns an *ArgError naming the set on rejection.
func validateEnumArg(arg, value string, allowed []string) error {
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return &ArgError{Arg: arg, Value: value, Allowed: allowed}
}
