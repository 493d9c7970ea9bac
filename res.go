// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/netascode/go-nxos/proto"
)

// Res is the assembled result of one RPC. The device streams its answer in
// chunks; Res holds the concatenated YangData and Errors fragments along
// with the request id they were checked against.
type Res struct {
	// ReqID is the request id this response belongs to.
	ReqID int64

	// YangData is the raw JSON data payload reported by the device. Empty
	// when the operation returned no data.
	YangData string

	// Errors is the raw JSON error report from the device. Empty when the
	// device reported none.
	Errors string
}

// buildRes drains a reply stream into a Res. Every chunk's request id must
// match reqID; a mismatch aborts assembly with a ReplyError. Transport errors
// from Recv propagate unmodified.
func buildRes(reqID int64, stream proto.ReplyStream) (Res, error) {
	res := Res{ReqID: reqID}
	var yangData, errs strings.Builder

	for {
		reply, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}
		if reply.ReqID != reqID {
			return res, &ReplyError{Want: reqID, Got: reply.ReqID}
		}
		yangData.WriteString(reply.YangData)
		errs.WriteString(reply.Errors)
	}

	res.YangData = yangData.String()
	res.Errors = errs.String()
	return res, nil
}

// OK reports whether the device returned an empty error report.
func (r Res) OK() bool {
	return r.Errors == ""
}

// GetValue queries the YANG data payload with a gjson path.
//
// Example:
//
//	res, _ := client.GetOper(ctx, "Cisco-NX-OS-device:System", nxos.Namespace(ns))
//	name := res.GetValue("System.name").String()
func (r Res) GetValue(path string) gjson.Result {
	return gjson.Get(r.YangData, path)
}

// GetError queries the device error report with a gjson path.
func (r Res) GetError(path string) gjson.Result {
	return gjson.Get(r.Errors, path)
}

// JSON renders the response as a single JSON document with ReqID, YangData
// and Errors fields, useful for debugging and logging. Returns an empty
// string if marshaling fails.
func (r Res) JSON() string {
	wrapper := struct {
		ReqID    int64  `json:"ReqID"`
		YangData string `json:"YangData"`
		Errors   string `json:"Errors"`
	}{
		ReqID:    r.ReqID,
		YangData: r.YangData,
		Errors:   r.Errors,
	}

	data, err := json.Marshal(wrapper)
	if err != nil {
		return ""
	}
	return string(data)
}
