// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

// Req carries the optional per-call parameters, populated through request
// modifier functions. A fresh Req with operation-appropriate defaults is
// built for every call and discarded after dispatch.
//
// Example:
//
//	res, err := client.GetOper(ctx, "Cisco-NX-OS-device:System",
//	    nxos.Namespace("http://cisco.com/ns/yang/cisco-nx-os-device"),
//	    nxos.ReqID(1))
type Req struct {
	// ReqID is the request id echoed back by the device.
	ReqID int64

	// Namespace is the YANG namespace applied when compiling an XPath.
	// Required unless PathIsPayload is set.
	Namespace string

	// PathIsPayload marks the path argument as a preformed JSON payload
	// that bypasses XPath compilation.
	PathIsPayload bool

	// Source is the GetConfig source datastore.
	Source string

	// Operation is the EditConfig operation.
	Operation string

	// DefaultOperation is the EditConfig default operation.
	DefaultOperation string

	// SessionID is the EditConfig/CloseSession/KillSession session id.
	// Zero means stateless operation.
	SessionID int64

	// Target is the EditConfig target datastore.
	Target string

	// ErrorOperation is the EditConfig error handling policy.
	ErrorOperation string
}

func newReq() *Req {
	return &Req{
		Source:           SourceRunning,
		Operation:        EditOpMerge,
		DefaultOperation: DefaultOpMerge,
		Target:           TargetRunning,
		ErrorOperation:   ErrorOpRollBack,
	}
}

// payload returns the wire payload for yangPath: the path itself when marked
// as a preformed payload, otherwise the compiled container JSON.
func (r *Req) payload(yangPath string) (string, error) {
	if r.PathIsPayload {
		return yangPath, nil
	}
	return CompileXPath(yangPath, r.Namespace)
}
