// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"crypto/x509"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/netascode/go-nxos/proto"
)

// Default client configuration values
const (
	// DefaultPort is the gRPC port NX-OS listens on when none is given in the
	// target string.
	DefaultPort = 50051

	// DefaultTimeout is the per-call timeout in seconds. The value is the
	// 32-bit signed integer maximum, the largest deadline the device-side
	// C long accepts, and stands in for "no timeout".
	DefaultTimeout = math.MaxInt32
)

// Client is a handle to the gRPCConfigOper service of one NX-OS device.
//
// All connection parameters are fixed at construction: the resolved target,
// the credential material and the transport selection do not change over the
// Client's lifetime. The client performs one blocking RPC per operation and
// holds no internal synchronization; callers that share one Client across
// goroutines must serialize access themselves or create one Client per
// goroutine.
type Client struct {
	// Target is the normalized host:port the client dials.
	Target string

	// Timeout is the deadline applied to every call, in seconds.
	Timeout int

	// Auth metadata, sent per call. Not related to transport security.
	username string
	password string

	// TLS credential material (PEM). Empty selects the insecure transport.
	credentials       []byte
	credentialsFile   string
	tlsServerOverride string
	secure            bool

	conn *grpc.ClientConn
	stub proto.ConfigOperClient

	logger Logger
}

// NewClient normalizes the target, prepares credential material and binds a
// gRPCConfigOper stub over a secure or insecure channel.
//
// The channel itself is lazy; no network I/O happens until the first
// operation. Presence of credential material (Credentials or CredentialsFile)
// is what selects TLS; there is no partial mode.
//
// Example:
//
//	client, err := nxos.NewClient("10.0.0.1",
//	    nxos.Username("admin"),
//	    nxos.Password("secret"),
//	    nxos.CredentialsFile("ca.pem"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(target string, opts ...func(*Client)) (*Client, error) {
	client := &Client{
		Timeout: DefaultTimeout,
		logger:  &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.Timeout < 0 || client.Timeout > math.MaxInt32 {
		return nil, &ArgError{
			Arg:     "timeout",
			Value:   strconv.Itoa(client.Timeout),
			Message: fmt.Sprintf("nxos: timeout must be between 0 and %d seconds", math.MaxInt32),
		}
	}

	resolved, err := client.resolveTarget(target)
	if err != nil {
		return nil, err
	}
	client.Target = resolved

	if err := client.loadCredentials(); err != nil {
		return nil, err
	}

	dialOpts, err := client.dialOptions()
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(client.Target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("nxos: creating channel to %s: %w", client.Target, err)
	}
	client.conn = conn
	client.stub = proto.NewConfigOperClient(conn)

	client.logger.Info("client created",
		"target", client.Target,
		"secure", client.secure,
		"timeout_s", client.Timeout)

	return client, nil
}

// Close tears down the underlying channel. The client cannot be reused
// afterwards.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Secure reports whether the client dialed with TLS credentials.
func (c *Client) Secure() bool {
	return c.secure
}

// resolveTarget normalizes a user-supplied target into host:port.
//
// The input may be a bare host, host:port, or a URL-like string with a
// scheme. Parsing goes through net/url, so the authority marker is prepended
// when missing; a scheme is ignored (addressing has no scheme dimension), and
// a missing port is filled with DefaultPort. IPv6 literals must be bracketed,
// [::1] or [::1]:50051; unbracketed forms are rejected as ambiguous.
func (c *Client) resolveTarget(target string) (string, error) {
	raw := target
	if !containsAuthorityMarker(target) {
		target = "//" + target
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" || parsed.Hostname() == "" {
		return "", &ArgError{
			Arg:     "target",
			Value:   raw,
			Message: fmt.Sprintf("nxos: unable to parse host from target %q", raw),
		}
	}

	if parsed.Scheme != "" {
		c.logger.Debug("scheme in target ignored, using authority only",
			"target", raw,
			"scheme", parsed.Scheme)
	}

	// Unbracketed IPv6 literals can survive URL parsing with the last
	// colon-separated group mistaken for a port. Reject them instead of
	// resolving a mis-split address.
	if !strings.HasPrefix(parsed.Host, "[") && strings.Contains(parsed.Hostname(), ":") {
		return "", &ArgError{
			Arg:     "target",
			Value:   raw,
			Message: fmt.Sprintf("nxos: ambiguous host in target %q, IPv6 literals must be bracketed", raw),
		}
	}

	if parsed.Port() == "" {
		ported := net.JoinHostPort(parsed.Hostname(), strconv.Itoa(DefaultPort))
		c.logger.Debug("no port in target, default applied",
			"target", raw,
			"resolved", ported)
		return ported, nil
	}

	return parsed.Host, nil
}

func containsAuthorityMarker(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '/' && s[i+1] == '/' {
			return true
		}
	}
	return false
}

// loadCredentials materializes the TLS credential bytes. Inline material is
// passed through; file-sourced material is read once, here, so unreadable
// files fail client construction rather than the first call.
func (c *Client) loadCredentials() error {
	if c.credentialsFile == "" {
		return nil
	}
	pem, err := os.ReadFile(c.credentialsFile)
	if err != nil {
		return fmt.Errorf("nxos: reading credentials file: %w", err)
	}
	c.credentials = pem
	return nil
}

// dialOptions selects the transport. No credential material means an
// insecure channel; otherwise the PEM bytes become the root CA set for a TLS
// channel, with the optional server name override applied.
func (c *Client) dialOptions() ([]grpc.DialOption, error) {
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(grpc.ForceCodec(proto.Codec{})),
	}

	if len(c.credentials) == 0 {
		c.secure = false
		c.logger.Debug("no credentials supplied, using insecure transport",
			"target", c.Target)
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		return opts, nil
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(c.credentials) {
		return nil, &ArgError{
			Arg:     "credentials",
			Message: "nxos: no certificates parsed from credential material",
		}
	}

	c.secure = true
	opts = append(opts, grpc.WithTransportCredentials(
		credentials.NewClientTLSFromCert(pool, c.tlsServerOverride)))
	return opts, nil
}
