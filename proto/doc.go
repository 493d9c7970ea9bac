// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package proto implements the wire layer for the NX-OS gRPC management
// services: the NXOSExtensibleManagabilityService.gRPCConfigOper client stub
// and the mdt_dialout.gRPCMdtDialout stream descriptor used by the telemetry
// receiver.
//
// The message set is small and fixed (a handful of string and int64 fields),
// so the types are written by hand against the protobuf wire format using
// google.golang.org/protobuf/encoding/protowire instead of carrying generated
// code. Codec plugs them into grpc-go via grpc.ForceCodec /
// grpc.ForceServerCodec.
//
// All gRPCConfigOper RPCs are server-streaming and reply with the same field
// triple (ReqID, YangData, Errors), represented here by the single Reply type.
// Consumers read replies through the ReplyStream interface, which is also the
// seam test doubles implement.
package proto
