// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package proto

import (
	"context"

	"google.golang.org/grpc"
)

// Service names as published by the device. "Managability" is the spelling
// the NX-OS proto definition uses.
const (
	ConfigOperService = "NXOSExtensibleManagabilityService.gRPCConfigOper"
	MdtDialoutService = "mdt_dialout.gRPCMdtDialout"
	MdtDialoutMethod  = "MdtDialout"
)

// ReplyStream reads the server-streamed reply chunks of a gRPCConfigOper RPC.
// Recv returns io.EOF once the device has sent the final chunk.
type ReplyStream interface {
	Recv() (*Reply, error)
}

// ConfigOperClient is the client stub for the gRPCConfigOper service, one
// method per RPC. All methods are server-streaming.
type ConfigOperClient interface {
	GetOper(ctx context.Context, in *GetOperArgs, opts ...grpc.CallOption) (ReplyStream, error)
	Get(ctx context.Context, in *GetArgs, opts ...grpc.CallOption) (ReplyStream, error)
	GetConfig(ctx context.Context, in *GetConfigArgs, opts ...grpc.CallOption) (ReplyStream, error)
	EditConfig(ctx context.Context, in *EditConfigArgs, opts ...grpc.CallOption) (ReplyStream, error)
	StartSession(ctx context.Context, in *SessionArgs, opts ...grpc.CallOption) (ReplyStream, error)
	CloseSession(ctx context.Context, in *CloseSessionArgs, opts ...grpc.CallOption) (ReplyStream, error)
	KillSession(ctx context.Context, in *KillArgs, opts ...grpc.CallOption) (ReplyStream, error)
}

// NewConfigOperClient binds a stub to an established channel.
func NewConfigOperClient(cc grpc.ClientConnInterface) ConfigOperClient {
	return &configOperClient{cc: cc}
}

type configOperClient struct {
	cc grpc.ClientConnInterface
}

// invoke opens the server stream for method, sends the single request message
// and half-closes, leaving the stream ready for Recv.
func (c *configOperClient) invoke(ctx context.Context, method string, in Message, opts []grpc.CallOption) (ReplyStream, error) {
	desc := &grpc.StreamDesc{StreamName: method, ServerStreams: true}
	stream, err := c.cc.NewStream(ctx, desc, "/"+ConfigOperService+"/"+method, opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &replyStream{stream}, nil
}

func (c *configOperClient) GetOper(ctx context.Context, in *GetOperArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "GetOper", in, opts)
}

func (c *configOperClient) Get(ctx context.Context, in *GetArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "Get", in, opts)
}

func (c *configOperClient) GetConfig(ctx context.Context, in *GetConfigArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "GetConfig", in, opts)
}

func (c *configOperClient) EditConfig(ctx context.Context, in *EditConfigArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "EditConfig", in, opts)
}

func (c *configOperClient) StartSession(ctx context.Context, in *SessionArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "StartSession", in, opts)
}

func (c *configOperClient) CloseSession(ctx context.Context, in *CloseSessionArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "CloseSession", in, opts)
}

func (c *configOperClient) KillSession(ctx context.Context, in *KillArgs, opts ...grpc.CallOption) (ReplyStream, error) {
	return c.invoke(ctx, "KillSession", in, opts)
}

type replyStream struct {
	grpc.ClientStream
}

func (s *replyStream) Recv() (*Reply, error) {
	r := new(Reply)
	if err := s.ClientStream.RecvMsg(r); err != nil {
		return nil, err
	}
	return r, nil
}
