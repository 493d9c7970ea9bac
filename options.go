// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

// Client configuration options using the functional options pattern

// Username sets the username sent as call metadata on every RPC.
func Username(username string) func(*Client) {
	return func(c *Client) {
		c.username = username
	}
}

// Password sets the password sent as call metadata on every RPC.
func Password(password string) func(*Client) {
	return func(c *Client) {
		c.password = password
	}
}

// Timeout sets the per-call timeout in seconds (default: DefaultTimeout,
// effectively no timeout). Applies uniformly to every operation; there is no
// per-call override.
func Timeout(seconds int) func(*Client) {
	return func(c *Client) {
		c.Timeout = seconds
	}
}

// Credentials supplies inline PEM credential material. Its presence selects
// the TLS transport.
func Credentials(pem []byte) func(*Client) {
	return func(c *Client) {
		c.credentials = pem
	}
}

// CredentialsFile names a PEM file to read the credential material from. The
// file is read once during NewClient; a read failure fails construction.
func CredentialsFile(path string) func(*Client) {
	return func(c *Client) {
		c.credentialsFile = path
	}
}

// TLSServerOverride overrides the server name used for TLS verification.
// Only meaningful together with Credentials or CredentialsFile.
func TLSServerOverride(name string) func(*Client) {
	return func(c *Client) {
		c.tlsServerOverride = name
	}
}

// WithLogger configures a custom logger for the client. The default is
// NoOpLogger, which discards everything.
//
// Example:
//
//	client, _ := nxos.NewClient("10.0.0.1",
//	    nxos.Username("admin"),
//	    nxos.Password("secret"),
//	    nxos.WithLogger(nxos.NewDefaultLogger(nxos.LogLevelDebug)))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Request modifiers for individual operations

// ReqID sets the request id the device echoes back in its reply chunks
// (default 0).
func ReqID(id int64) func(*Req) {
	return func(req *Req) {
		req.ReqID = id
	}
}

// Namespace sets the YANG namespace used when compiling an XPath into a
// payload. Required for Get, GetOper and GetConfig unless PathIsPayload is
// used.
func Namespace(namespace string) func(*Req) {
	return func(req *Req) {
		req.Namespace = namespace
	}
}

// PathIsPayload marks the path argument as a preformed JSON payload,
// bypassing XPath compilation entirely.
func PathIsPayload() func(*Req) {
	return func(req *Req) {
		req.PathIsPayload = true
	}
}

// Source sets the GetConfig source datastore (default SourceRunning).
func Source(source string) func(*Req) {
	return func(req *Req) {
		req.Source = source
	}
}

// Operation sets the EditConfig operation (default EditOpMerge).
func Operation(operation string) func(*Req) {
	return func(req *Req) {
		req.Operation = operation
	}
}

// DefaultOperation sets the EditConfig default operation applied while
// traversing the configuration tree (default DefaultOpMerge).
func DefaultOperation(operation string) func(*Req) {
	return func(req *Req) {
		req.DefaultOperation = operation
	}
}

// SessionID binds an EditConfig call to a session acquired from
// StartSession. Zero (the default) means stateless operation.
func SessionID(id int64) func(*Req) {
	return func(req *Req) {
		req.SessionID = id
	}
}

// Target sets the EditConfig target datastore (default TargetRunning).
func Target(target string) func(*Req) {
	return func(req *Req) {
		req.Target = target
	}
}

// ErrorOperation sets the EditConfig error handling policy (default
// ErrorOpRollBack).
func ErrorOperation(operation string) func(*Req) {
	return func(req *Req) {
		req.ErrorOperation = operation
	}
}
