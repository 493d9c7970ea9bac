// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/netascode/go-nxos/proto"
)

// MDTServer receives NX-OS model-driven telemetry over the gRPCMdtDialout
// dial-out stream. Devices push telemetry messages, chunked when they exceed
// the transport frame size; the server reassembles chunks by request id and
// hands each complete payload to the registered callbacks. Payload decoding
// (the telemetry protobuf) is left to the callbacks.
//
// Example:
//
//	server := nxos.NewMDTServer()
//	server.OnMessage(func(data []byte) {
//	    fmt.Printf("telemetry message, %d bytes\n", len(data))
//	})
//	lis, err := net.Listen("tcp", "[::]:50051")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(server.Serve(lis))
type MDTServer struct {
	server *grpc.Server
	creds  credentials.TransportCredentials
	logger Logger

	mu        sync.Mutex
	chunks    map[int64][]byte
	callbacks []func(data []byte)
}

// NewMDTServer builds a telemetry receiver. Without MDTServerCredentials the
// server accepts plaintext connections.
func NewMDTServer(opts ...func(*MDTServer)) *MDTServer {
	s := &MDTServer{
		chunks: make(map[int64][]byte),
		logger: &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	serverOpts := []grpc.ServerOption{
		grpc.ForceServerCodec(proto.Codec{}),
	}
	if s.creds != nil {
		serverOpts = append(serverOpts, grpc.Creds(s.creds))
	}

	s.server = grpc.NewServer(serverOpts...)
	s.server.RegisterService(&mdtServiceDesc, s)
	return s
}

// MDTServerCredentials makes the server require TLS using the given
// transport credentials.
func MDTServerCredentials(creds credentials.TransportCredentials) func(*MDTServer) {
	return func(s *MDTServer) {
		s.creds = creds
	}
}

// MDTServerLogger configures a custom logger for the server.
func MDTServerLogger(logger Logger) func(*MDTServer) {
	return func(s *MDTServer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// OnMessage registers a callback invoked with every fully assembled
// telemetry payload. Callbacks run on the stream's goroutine; slow handlers
// hold up acknowledgements for that device.
func (s *MDTServer) OnMessage(fn func(data []byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

// Serve accepts device connections on lis and blocks until Stop is called or
// the listener fails.
func (s *MDTServer) Serve(lis net.Listener) error {
	s.logger.Info("mdt server serving", "address", lis.Addr().String())
	return s.server.Serve(lis)
}

// Stop gracefully stops the server, draining open dial-out streams.
func (s *MDTServer) Stop() {
	s.server.GracefulStop()
}

type mdtDialoutService interface {
	dialout(stream grpc.ServerStream) error
}

func mdtDialoutHandler(srv any, stream grpc.ServerStream) error {
	return srv.(mdtDialoutService).dialout(stream)
}

var mdtServiceDesc = grpc.ServiceDesc{
	ServiceName: proto.MdtDialoutService,
	HandlerType: (*mdtDialoutService)(nil),
	Streams: []grpc.StreamDesc{{
		StreamName:    proto.MdtDialoutMethod,
		Handler:       mdtDialoutHandler,
		ServerStreams: true,
		ClientStreams: true,
	}},
	Metadata: "mdt_dialout.proto",
}

// dialout services one device stream: receive a chunk, fold it into the
// reassembly buffer, deliver completed messages, acknowledge with the
// chunk's request id.
func (s *MDTServer) dialout(stream grpc.ServerStream) error {
	for {
		chunk := new(proto.MdtDialoutArgs)
		if err := stream.RecvMsg(chunk); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		data, err := s.assemble(chunk)
		if err != nil {
			s.logger.Error("telemetry reassembly failed",
				"req_id", chunk.ReqID,
				"error", err.Error())
			return err
		}
		if data != nil {
			s.deliver(data)
		}

		if err := stream.SendMsg(&proto.MdtDialoutArgs{ReqID: chunk.ReqID}); err != nil {
			return err
		}
	}
}

// assemble folds one chunk into the per-request buffer. Returns the complete
// payload once the accumulated bytes reach the chunk's TotalSize, nil while
// more chunks are outstanding. Accumulating past TotalSize is a protocol
// violation and fails the stream.
func (s *MDTServer) assemble(chunk *proto.MdtDialoutArgs) ([]byte, error) {
	total := int(chunk.TotalSize)

	if total > 0 && len(chunk.Data) > total {
		return nil, fmt.Errorf("mdt: message %d chunk (%d bytes) is larger than total size (%d)",
			chunk.ReqID, len(chunk.Data), total)
	}
	if total == 0 || len(chunk.Data) == total {
		// Self-contained message
		return chunk.Data, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf := append(s.chunks[chunk.ReqID], chunk.Data...)
	switch {
	case len(buf) == total:
		delete(s.chunks, chunk.ReqID)
		return buf, nil
	case len(buf) > total:
		delete(s.chunks, chunk.ReqID)
		return nil, fmt.Errorf("mdt: message %d assembly (%d bytes) is larger than total size (%d)",
			chunk.ReqID, len(buf), total)
	default:
		s.chunks[chunk.ReqID] = buf
		return nil, nil
	}
}

func (s *MDTServer) deliver(data []byte) {
	s.mu.Lock()
	callbacks := make([]func([]byte), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(data)
	}
}
