// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package proto

import "fmt"

// CodecName is the grpc content-subtype this codec registers as. The NX-OS
// service speaks plain protobuf framing, so the standard name is kept.
const CodecName = "proto"

// Codec marshals the hand-written wire types in this package. Install it per
// channel with grpc.WithDefaultCallOptions(grpc.ForceCodec(proto.Codec{}))
// or per server with grpc.ForceServerCodec(proto.Codec{}).
type Codec struct{}

// Name implements grpc encoding.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements grpc encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("proto: cannot marshal %T: not a wire message", v)
	}
	return m.marshal(nil)
}

// Unmarshal implements grpc encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("proto: cannot unmarshal into %T: not a wire message", v)
	}
	return m.unmarshal(data)
}
