// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"context"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/netascode/go-nxos/proto"
)

// GetOper retrieves operational data located by yangPath.
//
// yangPath is compiled into the device's nested-container JSON form using the
// Namespace modifier, unless PathIsPayload marks it as a preformed payload.
//
// Example:
//
//	res, err := client.GetOper(ctx, "Cisco-NX-OS-device:System",
//	    nxos.Namespace("http://cisco.com/ns/yang/cisco-nx-os-device"))
func (c *Client) GetOper(ctx context.Context, yangPath string, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	payload, err := req.payload(yangPath)
	if err != nil {
		return Res{ReqID: req.ReqID}, err
	}

	args := &proto.GetOperArgs{ReqID: req.ReqID, YangPath: payload}
	return c.fulfill(ctx, "GetOper", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.GetOper(ctx, args)
	})
}

// Get retrieves configuration and operational data located by yangPath.
// Modifiers are the same as for GetOper.
func (c *Client) Get(ctx context.Context, yangPath string, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	payload, err := req.payload(yangPath)
	if err != nil {
		return Res{ReqID: req.ReqID}, err
	}

	args := &proto.GetArgs{ReqID: req.ReqID, YangPath: payload}
	return c.fulfill(ctx, "Get", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.Get(ctx, args)
	})
}

// GetConfig retrieves configuration data located by yangPath from a source
// datastore. The source defaults to "running", which is the only value the
// device is known to accept; anything else fails validation before dispatch.
func (c *Client) GetConfig(ctx context.Context, yangPath string, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	if err := validateEnumArg("source", req.Source, ValidSources); err != nil {
		return Res{ReqID: req.ReqID}, err
	}

	payload, err := req.payload(yangPath)
	if err != nil {
		return Res{ReqID: req.ReqID}, err
	}

	args := &proto.GetConfigArgs{ReqID: req.ReqID, Source: req.Source, YangPath: payload}
	return c.fulfill(ctx, "GetConfig", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.GetConfig(ctx, args)
	})
}

// EditConfig writes the JSON-encoded YANG data subset in payload to the
// target datastore.
//
// Operation, default operation, target and error policy all default to the
// device defaults (merge, merge, running, roll-back) and are validated
// against their closed sets before any dispatch. Payloads are preformed JSON;
// Body is the supported way to construct them. A zero session id means
// stateless operation.
//
// Example:
//
//	payload, err := nxos.Body{}.
//	    Set("System.name", "nx-sw-01").
//	    String()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := client.EditConfig(ctx, payload, nxos.Operation(nxos.EditOpReplace))
func (c *Client) EditConfig(ctx context.Context, payload string, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	if err := validateEnumArg("operation", req.Operation, ValidEditOperations); err != nil {
		return Res{ReqID: req.ReqID}, err
	}
	if err := validateEnumArg("default operation", req.DefaultOperation, ValidDefaultOperations); err != nil {
		return Res{ReqID: req.ReqID}, err
	}
	if err := validateEnumArg("target", req.Target, ValidTargets); err != nil {
		return Res{ReqID: req.ReqID}, err
	}
	if err := validateEnumArg("error operation", req.ErrorOperation, ValidErrorOperations); err != nil {
		return Res{ReqID: req.ReqID}, err
	}

	args := &proto.EditConfigArgs{
		ReqID:     req.ReqID,
		YangPath:  payload,
		Operation: req.Operation,
		SessionID: req.SessionID,
		Target:    req.Target,
		DefOp:     req.DefaultOperation,
		ErrorOp:   req.ErrorOperation,
	}
	return c.fulfill(ctx, "EditConfig", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.EditConfig(ctx, args)
	})
}

// StartSession starts a stateful configuration session and returns the
// acquired session id in the response data.
func (c *Client) StartSession(ctx context.Context, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	args := &proto.SessionArgs{ReqID: req.ReqID}
	return c.fulfill(ctx, "StartSession", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.StartSession(ctx, args)
	})
}

// CloseSession requests graceful termination of a session.
func (c *Client) CloseSession(ctx context.Context, sessionID int64, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	args := &proto.CloseSessionArgs{ReqID: req.ReqID, SessionID: sessionID}
	return c.fulfill(ctx, "CloseSession", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.CloseSession(ctx, args)
	})
}

// KillSession forces the closing of another session. Both ids pass through
// unchecked; whether the killing session must itself be open is device
// policy.
func (c *Client) KillSession(ctx context.Context, sessionID, sessionIDToKill int64, mods ...func(*Req)) (Res, error) {
	req := newReq()
	for _, mod := range mods {
		mod(req)
	}

	args := &proto.KillArgs{ReqID: req.ReqID, SessionID: sessionID, SessionIDToKill: sessionIDToKill}
	return c.fulfill(ctx, "KillSession", req.ReqID, func(ctx context.Context) (proto.ReplyStream, error) {
		return c.stub.KillSession(ctx, args)
	})
}

// fulfill executes one RPC. Every call goes through here: auth metadata and
// the client timeout are attached uniformly, the operation closure opens the
// reply stream, and the streamed chunks are assembled into a Res. Errors from
// the transport propagate to the caller as-is; this layer never retries.
func (c *Client) fulfill(ctx context.Context, op string, reqID int64, call func(ctx context.Context) (proto.ReplyStream, error)) (Res, error) {
	ctx = metadata.AppendToOutgoingContext(ctx,
		"username", c.username,
		"password", c.password)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.Timeout)*time.Second)
	defer cancel()

	c.logger.Debug("dispatching request",
		"operation", op,
		"target", c.Target,
		"req_id", reqID)

	stream, err := call(ctx)
	if err != nil {
		c.logger.Error("request failed",
			"operation", op,
			"target", c.Target,
			"req_id", reqID,
			"error", err.Error())
		return Res{ReqID: reqID}, err
	}

	res, err := buildRes(reqID, stream)
	if err != nil {
		c.logger.Error("response assembly failed",
			"operation", op,
			"target", c.Target,
			"req_id", reqID,
			"error", err.Error())
		return res, err
	}

	c.logger.Debug("response assembled",
		"operation", op,
		"req_id", reqID,
		"yang_data_bytes", len(res.YangData),
		"device_errors", !res.OK())

	return res, nil
}
