// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire type in this package. Codec dispatches
// through it, so anything passed to the stub or a stream must implement it.
type Message interface {
	marshal(b []byte) ([]byte, error)
	unmarshal(b []byte) error
}

// GetOperArgs is the request for gRPCConfigOper.GetOper.
type GetOperArgs struct {
	ReqID    int64
	YangPath string
}

// GetArgs is the request for gRPCConfigOper.Get.
type GetArgs struct {
	ReqID    int64
	YangPath string
}

// GetConfigArgs is the request for gRPCConfigOper.GetConfig.
type GetConfigArgs struct {
	ReqID    int64
	Source   string
	YangPath string
}

// EditConfigArgs is the request for gRPCConfigOper.EditConfig.
type EditConfigArgs struct {
	ReqID     int64
	YangPath  string
	Operation string
	SessionID int64
	Target    string
	DefOp     string
	ErrorOp   string
}

// SessionArgs is the request for gRPCConfigOper.StartSession.
type SessionArgs struct {
	ReqID int64
}

// CloseSessionArgs is the request for gRPCConfigOper.CloseSession.
type CloseSessionArgs struct {
	ReqID     int64
	SessionID int64
}

// KillArgs is the request for gRPCConfigOper.KillSession.
type KillArgs struct {
	ReqID           int64
	SessionID       int64
	SessionIDToKill int64
}

// Reply is one streamed response chunk. Every gRPCConfigOper RPC replies with
// this field triple; YangData and Errors arrive as JSON fragments that the
// caller concatenates across chunks.
type Reply struct {
	ReqID    int64
	YangData string
	Errors   string
}

// MdtDialoutArgs is both the request and the acknowledgement message of the
// gRPCMdtDialout.MdtDialout bidirectional stream. TotalSize is the byte size
// of the full telemetry message when it is split across chunks, zero when the
// chunk is self-contained.
type MdtDialoutArgs struct {
	ReqID     int64
	Data      []byte
	TotalSize int32
}

// Wire append helpers. Zero values are omitted, matching proto3 presence
// semantics.

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendInt64(b, num, int64(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// Wire consume helpers.

func consumeInt64(b []byte) (int64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return int64(v), n, nil
}

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

// unmarshalFields walks the wire-encoded fields in b, handing each one to
// apply. apply returns the number of bytes it consumed, or zero to have the
// field skipped as unknown.
func unmarshalFields(b []byte, apply func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		used, err := apply(num, typ, b)
		if err != nil {
			return err
		}
		if used == 0 {
			used = protowire.ConsumeFieldValue(num, typ, b)
			if used < 0 {
				return protowire.ParseError(used)
			}
		}
		b = b[used:]
	}
	return nil
}

func (m *GetOperArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendString(b, 2, m.YangPath)
	return b, nil
}

func (m *GetOperArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.YangPath, n, err = consumeString(b)
		}
		return n, err
	})
}

func (m *GetArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendString(b, 2, m.YangPath)
	return b, nil
}

func (m *GetArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.YangPath, n, err = consumeString(b)
		}
		return n, err
	})
}

func (m *GetConfigArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendString(b, 2, m.Source)
	b = appendString(b, 3, m.YangPath)
	return b, nil
}

func (m *GetConfigArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.Source, n, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.YangPath, n, err = consumeString(b)
		}
		return n, err
	})
}

func (m *EditConfigArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendString(b, 2, m.YangPath)
	b = appendString(b, 3, m.Operation)
	b = appendInt64(b, 4, m.SessionID)
	b = appendString(b, 5, m.Target)
	b = appendString(b, 6, m.DefOp)
	b = appendString(b, 7, m.ErrorOp)
	return b, nil
}

func (m *EditConfigArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.YangPath, n, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.Operation, n, err = consumeString(b)
		case num == 4 && typ == protowire.VarintType:
			m.SessionID, n, err = consumeInt64(b)
		case num == 5 && typ == protowire.BytesType:
			m.Target, n, err = consumeString(b)
		case num == 6 && typ == protowire.BytesType:
			m.DefOp, n, err = consumeString(b)
		case num == 7 && typ == protowire.BytesType:
			m.ErrorOp, n, err = consumeString(b)
		}
		return n, err
	})
}

func (m *SessionArgs) marshal(b []byte) ([]byte, error) {
	return appendInt64(b, 1, m.ReqID), nil
}

func (m *SessionArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		if num == 1 && typ == protowire.VarintType {
			m.ReqID, n, err = consumeInt64(b)
		}
		return n, err
	})
}

func (m *CloseSessionArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendInt64(b, 2, m.SessionID)
	return b, nil
}

func (m *CloseSessionArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.VarintType:
			m.SessionID, n, err = consumeInt64(b)
		}
		return n, err
	})
}

func (m *KillArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendInt64(b, 2, m.SessionID)
	b = appendInt64(b, 3, m.SessionIDToKill)
	return b, nil
}

func (m *KillArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.VarintType:
			m.SessionID, n, err = consumeInt64(b)
		case num == 3 && typ == protowire.VarintType:
			m.SessionIDToKill, n, err = consumeInt64(b)
		}
		return n, err
	})
}

func (m *Reply) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendString(b, 2, m.YangData)
	b = appendString(b, 3, m.Errors)
	return b, nil
}

func (m *Reply) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.YangData, n, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.Errors, n, err = consumeString(b)
		}
		return n, err
	})
}

func (m *MdtDialoutArgs) marshal(b []byte) ([]byte, error) {
	b = appendInt64(b, 1, m.ReqID)
	b = appendBytes(b, 2, m.Data)
	b = appendInt32(b, 3, m.TotalSize)
	return b, nil
}

func (m *MdtDialoutArgs) unmarshal(b []byte) error {
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			m.ReqID, n, err = consumeInt64(b)
		case num == 2 && typ == protowire.BytesType:
			m.Data, n, err = consumeBytes(b)
		case num == 3 && typ == protowire.VarintType:
			var v int64
			v, n, err = consumeInt64(b)
			m.TotalSize = int32(v)
		}
		return n, err
	})
}
